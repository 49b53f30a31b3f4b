package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/crypto"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
)

type Services struct {
	ProductService ProductService
	UserService    UserService
	OrderService   OrderService
}

func NewServices(repos *store.Repositories, cfg config.Auth, hasher crypto.PasswordHasher, logger *logger.Logger) *Services {
	// one validator instance shared by all services; it is concurrency-safe
	// and caches struct metadata
	validate := validator.New()

	return &Services{
		ProductService: NewProductService(repos.ProductRepository, validate, logger),
		UserService:    NewUserService(repos.UserRepository, hasher, validate, cfg, logger),
		OrderService:   NewOrderService(repos.OrderRepository, validate, logger),
	}
}
