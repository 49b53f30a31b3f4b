// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// ─────────────────────────────────────────────
// Mock ProductService
// ─────────────────────────────────────────────

// mockProductService implements service.ProductService for unit tests.
// Each method field can be overridden per test case.
type mockProductService struct {
	getProductsFn   func(ctx context.Context) ([]models.Product, error)
	createProductFn func(ctx context.Context, product models.ProductCreate) (models.Product, error)
	updateProductFn func(ctx context.Context, productID string, partial models.ProductUpdate) (models.Product, error)
	deleteProductFn func(ctx context.Context, productID string) (models.Product, error)
}

func (m *mockProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return m.getProductsFn(ctx)
}

func (m *mockProductService) CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error) {
	return m.createProductFn(ctx, product)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, productID string, partial models.ProductUpdate) (models.Product, error) {
	return m.updateProductFn(ctx, productID, partial)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, productID string) (models.Product, error) {
	return m.deleteProductFn(ctx, productID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithProducts builds a Handler with the given ProductService mock.
func newHandlerWithProducts(t *testing.T, products service.ProductService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ProductService: products,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises a value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withURLParam attaches a chi route parameter to the request context, as the
// router would when dispatching to the handler.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sampleProduct is a convenience fixture used across multiple tests.
var sampleProduct = models.Product{
	ID: "1",
	ProductBase: models.ProductBase{
		Name:     "Running Shoe",
		Price:    59.99,
		Size:     42,
		Quantity: 10,
		ImgURL:   "https://cdn.example.com/shoe.png",
	},
}

// ─────────────────────────────────────────────
// GET /products
// ─────────────────────────────────────────────

func TestGetProducts_Success(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		getProductsFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{sampleProduct}, nil
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	h.getProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, sampleProduct, got[0])
}

// An empty catalog answers with a JSON array, not null.
func TestGetProducts_EmptyCatalog(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		getProductsFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{}, nil
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	h.getProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProducts_StoreError(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		getProductsFn: func(_ context.Context) ([]models.Product, error) {
			return nil, fmt.Errorf("%w: connection refused", store.ErrStoreUnavailable)
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	h.getProducts(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"store error"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /products
// ─────────────────────────────────────────────

func TestCreateProduct_Success(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		createProductFn: func(_ context.Context, product models.ProductCreate) (models.Product, error) {
			return models.Product{ID: "7", ProductBase: product}, nil
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(jsonBody(t, sampleProduct.ProductBase)))
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, sampleProduct.Name, got.Name)
}

func TestCreateProduct_InvalidJSON(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{})

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestCreateProduct_InvalidDataProvided(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		createProductFn: func(_ context.Context, _ models.ProductCreate) (models.Product, error) {
			return models.Product{}, service.ErrInvalidDataProvided
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(jsonBody(t, models.ProductBase{Name: "x"})))
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

// An insert acknowledged without an echoed row is a store anomaly, not a
// missing resource: 500, not 404.
func TestCreateProduct_InsertReturnedNoRows(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		createProductFn: func(_ context.Context, _ models.ProductCreate) (models.Product, error) {
			return models.Product{}, fmt.Errorf("product insert: %w", store.ErrNoRows)
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(jsonBody(t, sampleProduct.ProductBase)))
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"store error"}`, rec.Body.String())
}

func TestCreateProduct_StoreError(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		createProductFn: func(_ context.Context, _ models.ProductCreate) (models.Product, error) {
			return models.Product{}, fmt.Errorf("%w: internal error", store.ErrStoreRejected)
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(jsonBody(t, sampleProduct.ProductBase)))
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"store error"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// PUT /products/{product_id}
// ─────────────────────────────────────────────

func TestUpdateProduct_Success(t *testing.T) {
	newPrice := 79.99
	h := newHandlerWithProducts(t, &mockProductService{
		updateProductFn: func(_ context.Context, productID string, partial models.ProductUpdate) (models.Product, error) {
			assert.Equal(t, "1", productID)
			require.NotNil(t, partial.Price)
			updated := sampleProduct
			updated.Price = *partial.Price
			return updated, nil
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/products/1", strings.NewReader(jsonBody(t, models.ProductUpdate{Price: &newPrice})))
	req = withURLParam(req, "product_id", "1")
	rec := httptest.NewRecorder()

	h.updateProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.InDelta(t, newPrice, got.Price, 1e-9)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		updateProductFn: func(_ context.Context, productID string, _ models.ProductUpdate) (models.Product, error) {
			return models.Product{}, fmt.Errorf("product %s: %w", productID, store.ErrNoRows)
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/products/999", strings.NewReader("{}"))
	req = withURLParam(req, "product_id", "999")
	rec := httptest.NewRecorder()

	h.updateProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestUpdateProduct_InvalidJSON(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{})

	req := httptest.NewRequest(http.MethodPut, "/products/1", strings.NewReader("not json"))
	req = withURLParam(req, "product_id", "1")
	rec := httptest.NewRecorder()

	h.updateProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /products/{product_id}
// ─────────────────────────────────────────────

func TestDeleteProduct_Success(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		deleteProductFn: func(_ context.Context, productID string) (models.Product, error) {
			assert.Equal(t, "1", productID)
			return sampleProduct, nil
		},
	})
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	req = withURLParam(req, "product_id", "1")
	rec := httptest.NewRecorder()

	h.deleteProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"detail":"Product deleted"}`, rec.Body.String())
}

func TestDeleteProduct_NotFound(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		deleteProductFn: func(_ context.Context, productID string) (models.Product, error) {
			return models.Product{}, fmt.Errorf("product %s: %w", productID, store.ErrNoRows)
		},
	})
	req := httptest.NewRequest(http.MethodDelete, "/products/999", nil)
	req = withURLParam(req, "product_id", "999")
	rec := httptest.NewRecorder()

	h.deleteProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestDeleteProduct_UnexpectedError(t *testing.T) {
	h := newHandlerWithProducts(t, &mockProductService{
		deleteProductFn: func(_ context.Context, _ string) (models.Product, error) {
			return models.Product{}, errors.New("store connection lost")
		},
	})
	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	req = withURLParam(req, "product_id", "1")
	rec := httptest.NewRecorder()

	h.deleteProduct(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
