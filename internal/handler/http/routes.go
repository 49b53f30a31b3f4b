package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-shop-api/internal/config"
)

func (h *Handler) Init(corsCfg config.CORS) *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/products", func(r chi.Router) {
		r.Get("/", h.getProducts)
		r.Post("/", h.createProduct)
		r.Put("/{product_id}", h.updateProduct)
		r.Delete("/{product_id}", h.deleteProduct)
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.getUsers)
		r.Post("/", h.registerUser)
	})

	router.Post("/login", h.login)

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.getOrders)
		r.Post("/", h.createOrder)
	})

	router.Method("GET", "/metrics", promhttp.Handler())

	return router
}
