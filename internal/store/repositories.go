package store

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// Repositories bundles every per-table repository behind a single value for
// convenient wiring at startup.
type Repositories struct {
	ProductRepository ProductRepository
	UserRepository    UserRepository
	OrderRepository   OrderRepository
}

// NewRepositories constructs the PostgREST client from cfg and wires every
// repository on top of it. Returns an error if the store URL is invalid.
func NewRepositories(cfg config.Store, logger *logger.Logger) (*Repositories, error) {
	client, err := NewRestClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		ProductRepository: NewProductRepository(client, logger),
		UserRepository:    NewUserRepository(client, logger),
		OrderRepository:   NewOrderRepository(client, logger),
	}, nil
}
