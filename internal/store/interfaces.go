// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides access to the hosted tabular store that backs the
// shop: a Supabase project spoken to over its PostgREST API.
//
// The low-level [TableClient] issues table-scoped select/insert/update/delete
// calls; per-entity repositories sit on top and translate rows into domain
// models. Error values defined in errors.go separate "zero rows matched"
// ([ErrNoRows]) from genuine store failures ([ErrStoreUnavailable],
// [ErrStoreRejected]) so that callers can use [errors.Is] for precise
// handling.
package store

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// TableClient defines the table-scoped operations the repositories consume.
// All operations return the affected rows decoded into dest, which must be a
// pointer to a slice of the row type.
type TableClient interface {
	// Select fetches all rows of table matching the equality filters
	// (nil or empty filters fetch the whole table).
	Select(ctx context.Context, table string, filters map[string]string, dest any) error

	// Insert persists record into table and decodes the stored
	// representation (with store-assigned fields) into dest.
	Insert(ctx context.Context, table string, record, dest any) error

	// Update applies the non-nil fields of partial to the row of table with
	// the given id and decodes the updated rows into dest. Zero decoded
	// rows means the id did not exist.
	Update(ctx context.Context, table, id string, partial, dest any) error

	// Delete removes the row of table with the given id and decodes the
	// deleted rows into dest. Zero decoded rows means the id did not exist.
	Delete(ctx context.Context, table, id string, dest any) error
}

// ProductRepository provides persistence for the product catalog.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error)
	UpdateProduct(ctx context.Context, productID string, partial models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, productID string) (models.Product, error)
}

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// OrderRepository provides persistence for orders.
type OrderRepository interface {
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, order models.OrderCreate) (models.Order, error)
}
