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

// orderService is the concrete implementation of [OrderService].
type orderService struct {
	orderRepository store.OrderRepository
	validate        *validator.Validate
	logger          *logger.Logger
}

// NewOrderService constructs an [OrderService] backed by the given repository.
func NewOrderService(orderRepository store.OrderRepository, validate *validator.Validate, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		validate:        validate,
		logger:          logger,
	}
}

// GetOrders lists every placed order. It never returns an error: if the
// store is unreachable or rejects the read, the failure is logged and an
// empty list is served so the order history page stays up.
func (s *orderService) GetOrders(ctx context.Context) []models.Order {
	log := logger.FromContext(ctx)

	orders, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		log.Err(err).Msg("orders fetch ended with error, serving empty list")
		return []models.Order{}
	}

	return orders
}

// CreateOrder validates and persists an order.
//
// Validation failures are returned as [ErrInvalidDataProvided]. Store
// failures are logged and swallowed: the submitted payload is echoed back
// as the resulting order (without a store-assigned id), so checkout always
// acknowledges the customer.
func (s *orderService) CreateOrder(ctx context.Context, order models.OrderCreate) (models.Order, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(order); err != nil {
		log.Err(err).Str("user_email", order.UserEmail).Msg("invalid order data provided")
		return models.Order{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	created, err := s.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		log.Err(err).Str("user_email", order.UserEmail).Msg("order persistence failed, echoing submitted order")
		return models.Order{OrderCreate: order}, nil
	}

	return created, nil
}
