package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// GetOrders degrades to an empty list on store failure, so this
	// endpoint always answers 200
	orders := h.services.OrderService.GetOrders(ctx)

	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var order models.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	placed, err := h.services.OrderService.CreateOrder(ctx, order)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid order data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("order placement ended with error")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, models.OrderResponse{
		Message: "Orden guardada",
		Order:   placed,
	}, http.StatusOK)
}
