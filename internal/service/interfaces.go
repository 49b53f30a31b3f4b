package service

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// ProductService owns validation and orchestration for the product catalog.
type ProductService interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error)
	UpdateProduct(ctx context.Context, productID string, partial models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, productID string) (models.Product, error)
}

// UserService owns account listing, registration, and authentication.
type UserService interface {
	GetUsers(ctx context.Context) ([]models.UserOut, error)
	RegisterUser(ctx context.Context, user models.UserCreate) (models.UserOut, error)

	// Login authenticates by email and plaintext password. It returns
	// [ErrInvalidCredentials] for both an unknown email and a password
	// mismatch, deliberately indistinguishable.
	Login(ctx context.Context, credentials models.UserCredentials) (models.UserOut, error)

	// CreateToken issues a signed session token for an authenticated user.
	CreateToken(ctx context.Context, user models.UserOut) (models.Token, error)
}

// OrderService owns order listing and placement. Its store-failure policy
// differs from the other services on purpose: reads degrade to an empty
// list and writes fall back to echoing the submitted order, so the
// storefront checkout never breaks on a store hiccup.
type OrderService interface {
	// GetOrders never fails: any store error is logged and an empty list
	// is returned.
	GetOrders(ctx context.Context) []models.Order

	// CreateOrder validates and persists an order. Validation failures are
	// returned as errors; store failures are logged and the submitted
	// payload is echoed back as the resulting order.
	CreateOrder(ctx context.Context, order models.OrderCreate) (models.Order, error)
}
