// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OrderItem is a single line of an order: a product name and the price it
// was sold at.
type OrderItem struct {
	Name string `json:"name" validate:"required"`

	// Price may be zero: free or fully discounted lines are legal.
	Price float64 `json:"price"`
}

// OrderCreate is the payload accepted by POST /orders.
//
// The items list may be empty, Date is a free-form string, and Total is not
// checked against the sum of item prices. All three are caller-trusted:
// the storefront computes totals (shipping, discounts) and owns the date
// format.
type OrderCreate struct {
	// UserEmail identifies the buyer. No referential check against the
	// users table is performed at this layer.
	UserEmail string `json:"user_email" validate:"required"`

	// Items is the ordered sequence of purchased lines.
	Items []OrderItem `json:"items" validate:"dive"`

	// Total is the caller-computed order total. Zero is legal: a fully
	// discounted order still gets placed.
	Total float64 `json:"total"`

	// Date is the caller-supplied order date string.
	Date string `json:"date" validate:"required"`

	// Status is a free-form order status string (e.g. "PENDING").
	Status string `json:"status" validate:"required"`
}

// Order is an order row as stored and returned by the store.
type Order struct {
	// ID is the unique identifier assigned by the store on insert.
	ID string `json:"id,omitempty"`

	OrderCreate
}

// TableName returns the name of the store table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
