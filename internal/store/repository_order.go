package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// orderRepository is the hosted-store implementation of [OrderRepository].
// It works against the "orders" table.
type orderRepository struct {
	logger *logger.Logger
	client TableClient
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// table client and logger.
func NewOrderRepository(client TableClient, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		client: client,
		logger: logger,
	}
}

// GetAllOrders fetches every row of the orders table. An empty order book
// yields an empty slice, not an error.
func (r *orderRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	orders := make([]models.Order, 0)
	if err := r.client.Select(ctx, models.Order{}.TableName(), nil, &orders); err != nil {
		log.Err(err).Msg("error selecting orders")
		return nil, fmt.Errorf("error selecting orders: %w", err)
	}

	return orders, nil
}

// CreateOrder inserts a new order and returns the stored row.
//
// Error handling:
//   - insert acknowledged but no row returned → [ErrNoRows]; the service
//     layer treats this case as benign and echoes the submitted order.
//   - transport or store failure → wrapped client error.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.OrderCreate) (models.Order, error) {
	log := logger.FromContext(ctx)

	rows := make([]models.Order, 0, 1)
	if err := r.client.Insert(ctx, models.Order{}.TableName(), order, &rows); err != nil {
		log.Err(err).Str("user_email", order.UserEmail).Msg("error inserting order")
		return models.Order{}, fmt.Errorf("error inserting order: %w", err)
	}
	if len(rows) == 0 {
		return models.Order{}, fmt.Errorf("order insert: %w", ErrNoRows)
	}

	return rows[0], nil
}
