// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
)

// ---- Mock: ProductService ----

type mockProductSvc struct{}

func (m *mockProductSvc) GetProducts(_ context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}
func (m *mockProductSvc) CreateProduct(_ context.Context, p models.ProductCreate) (models.Product, error) {
	return models.Product{ID: "1", ProductBase: p}, nil
}
func (m *mockProductSvc) UpdateProduct(_ context.Context, id string, _ models.ProductUpdate) (models.Product, error) {
	return models.Product{ID: id}, nil
}
func (m *mockProductSvc) DeleteProduct(_ context.Context, id string) (models.Product, error) {
	return models.Product{ID: id}, nil
}

// ---- Mock: UserService ----

type mockUserSvc struct{}

func (m *mockUserSvc) GetUsers(_ context.Context) ([]models.UserOut, error) {
	return []models.UserOut{}, nil
}
func (m *mockUserSvc) RegisterUser(_ context.Context, u models.UserCreate) (models.UserOut, error) {
	return models.UserOut{ID: "1", UserBase: u.UserBase}, nil
}
func (m *mockUserSvc) Login(_ context.Context, c models.UserCredentials) (models.UserOut, error) {
	return models.UserOut{ID: "1", UserBase: models.UserBase{Email: c.Email}}, nil
}
func (m *mockUserSvc) CreateToken(_ context.Context, _ models.UserOut) (models.Token, error) {
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

// ---- Mock: OrderService ----

type mockOrderSvc struct{}

func (m *mockOrderSvc) GetOrders(_ context.Context) []models.Order {
	return []models.Order{}
}
func (m *mockOrderSvc) CreateOrder(_ context.Context, o models.OrderCreate) (models.Order, error) {
	return models.Order{ID: "1", OrderCreate: o}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svcs := &service.Services{
		ProductService: &mockProductSvc{},
		UserService:    &mockUserSvc{},
		OrderService:   &mockOrderSvc{},
	}
	h := NewHandler(svcs, logger.Nop())
	return h.Init(config.CORS{AllowedOrigins: []string{"http://localhost:5173"}})
}

func TestRouter_RoutesAreWired(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/products", ""},
		{http.MethodPost, "/products", `{"name":"x"}`},
		{http.MethodPut, "/products/1", "{}"},
		{http.MethodDelete, "/products/1", ""},
		{http.MethodGet, "/users", ""},
		{http.MethodPost, "/users", `{"email":"a@b.c"}`},
		{http.MethodPost, "/login", `{"email":"a@b.c","password":"p"}`},
		{http.MethodGet, "/orders", ""},
		{http.MethodPost, "/orders", `{"total":1}`},
		{http.MethodGet, "/metrics", ""},
	}

	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		req := httptest.NewRequest(tc.method, tc.path, body)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.NotEqual(t, http.StatusNotFound, rec.Code, "%s %s must be routed", tc.method, tc.path)
		assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "%s %s must be routed", tc.method, tc.path)
	}
}

func TestRouter_UnknownRouteAnswers404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRouter_PropagatesIncomingTraceID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsEndpointServesPrometheusText(t *testing.T) {
	router := newTestRouter(t)

	// a request through the middleware chain first, so counters exist
	warmup := httptest.NewRequest(http.MethodGet, "/products", nil)
	router.ServeHTTP(httptest.NewRecorder(), warmup)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
