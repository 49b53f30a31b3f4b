// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// productService is the concrete implementation of [ProductService].
// It validates incoming payloads and delegates persistence to a
// [store.ProductRepository].
type productService struct {
	productRepository store.ProductRepository
	validate          *validator.Validate
	logger            *logger.Logger
}

// NewProductService constructs a [ProductService] wired to the given
// repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewProductService(productRepository store.ProductRepository, validate *validator.Validate, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		validate:          validate,
		logger:            logger,
	}
}

// GetProducts returns the full catalog. An empty catalog is an empty slice,
// not an error.
func (s *productService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepository.GetAllProducts(ctx)
}

// CreateProduct validates the payload and persists a new catalog entry.
//
// Returns [ErrInvalidDataProvided] (wrapped with field detail) when required
// fields are missing or the price is not strictly positive, or a wrapped
// store error if persistence fails.
func (s *productService) CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(product); err != nil {
		log.Err(err).Msg("invalid product data provided")
		return models.Product{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	return s.productRepository.CreateProduct(ctx, product)
}

// UpdateProduct validates the partial payload and applies it to the product
// with the given id. Only non-nil fields are touched.
//
// Returns store.ErrNoRows (wrapped) when the id matches nothing; the update
// is then guaranteed not to have been applied anywhere.
func (s *productService) UpdateProduct(ctx context.Context, productID string, partial models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(partial); err != nil {
		log.Err(err).Str("product_id", productID).Msg("invalid product update provided")
		return models.Product{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	return s.productRepository.UpdateProduct(ctx, productID, partial)
}

// DeleteProduct removes the product with the given id. Returns
// store.ErrNoRows (wrapped) when the id matches nothing.
func (s *productService) DeleteProduct(ctx context.Context, productID string) (models.Product, error) {
	return s.productRepository.DeleteProduct(ctx, productID)
}
