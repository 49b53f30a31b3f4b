package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// productRepository is the hosted-store implementation of
// [ProductRepository]. It works against the "products" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type productRepository struct {
	logger *logger.Logger
	client TableClient
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided table client and logger.
func NewProductRepository(client TableClient, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		client: client,
		logger: logger,
	}
}

// GetAllProducts fetches every row of the products table. An empty catalog
// yields an empty slice, not an error.
func (r *productRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products := make([]models.Product, 0)
	if err := r.client.Select(ctx, models.Product{}.TableName(), nil, &products); err != nil {
		log.Err(err).Msg("error selecting products")
		return nil, fmt.Errorf("error selecting products: %w", err)
	}

	return products, nil
}

// CreateProduct inserts a new product and returns the stored row with its
// store-assigned id.
//
// Error handling:
//   - insert acknowledged but no row returned → [ErrNoRows] (the store is
//     expected to echo the representation of every insert).
//   - transport or store failure → wrapped client error.
func (r *productRepository) CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.Product, 0, 1)
	if err := r.client.Insert(ctx, models.Product{}.TableName(), product, &rows); err != nil {
		log.Err(err).Msg("error inserting product")
		return models.Product{}, fmt.Errorf("error inserting product: %w", err)
	}
	if len(rows) == 0 {
		log.Error().Msg("product insert returned no rows")
		return models.Product{}, fmt.Errorf("product insert: %w", ErrNoRows)
	}

	return rows[0], nil
}

// UpdateProduct applies the non-nil fields of partial to the product with
// the given id and returns the updated row.
//
// Error handling:
//   - id matched no row → [ErrNoRows].
//   - transport or store failure → wrapped client error.
func (r *productRepository) UpdateProduct(ctx context.Context, productID string, partial models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.Product, 0, 1)
	if err := r.client.Update(ctx, models.Product{}.TableName(), productID, partial, &rows); err != nil {
		log.Err(err).Str("product_id", productID).Msg("error updating product")
		return models.Product{}, fmt.Errorf("error updating product: %w", err)
	}
	if len(rows) == 0 {
		return models.Product{}, fmt.Errorf("product %s: %w", productID, ErrNoRows)
	}

	return rows[0], nil
}

// DeleteProduct removes the product with the given id and returns the
// deleted row.
//
// Error handling mirrors UpdateProduct: unknown id → [ErrNoRows].
func (r *productRepository) DeleteProduct(ctx context.Context, productID string) (models.Product, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.Product, 0, 1)
	if err := r.client.Delete(ctx, models.Product{}.TableName(), productID, &rows); err != nil {
		log.Err(err).Str("product_id", productID).Msg("error deleting product")
		return models.Product{}, fmt.Errorf("error deleting product: %w", err)
	}
	if len(rows) == 0 {
		return models.Product{}, fmt.Errorf("product %s: %w", productID, ErrNoRows)
	}

	return rows[0], nil
}
