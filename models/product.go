// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProductBase holds the catalog attributes shared by every product
// representation.
type ProductBase struct {
	// Name is the display name of the product.
	Name string `json:"name" validate:"required"`

	// Price is the unit price. Must be strictly positive.
	Price float64 `json:"price" validate:"gt=0"`

	// Size is the numeric size label of the product (e.g. 42). Zero is a
	// legal value.
	Size int `json:"size"`

	// Quantity is the number of units in stock. Zero means sold out.
	Quantity int `json:"quantity"`

	// Gender is an optional audience marker (e.g. "M", "F", "UNISEX").
	Gender string `json:"gender,omitempty"`

	// ImgURL points to the product image.
	ImgURL string `json:"img_url" validate:"required"`
}

// ProductCreate is the payload accepted by POST /products.
// It carries exactly the base attributes; the identifier is assigned by the
// store.
type ProductCreate = ProductBase

// Product is a catalog entry as returned by the store, with its
// store-assigned identifier.
type Product struct {
	// ID is the unique identifier assigned by the store on insert.
	ID string `json:"id"`

	ProductBase
}

// ProductUpdate is the partial-update payload accepted by PUT /products/{id}.
// Nil fields are omitted from the update sent to the store, so only the
// fields present in the request body are modified.
type ProductUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Size     *int     `json:"size,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	ImgURL   *string  `json:"img_url,omitempty"`
}

// TableName returns the name of the store table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
