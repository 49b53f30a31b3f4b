package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.GetProducts(ctx)
	if err != nil {
		log.Err(err).Msg("products fetch ended with error")
		utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var product models.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ProductService.CreateProduct(ctx, product)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid product data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoRows):
			// the store acknowledged the insert but echoed no row back
			log.Err(err).Msg("product insert returned no rows")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("product creation ended with error")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID := chi.URLParam(r, "product_id")

	var partial models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		log.Err(err).Str("product_id", productID).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProductService.UpdateProduct(ctx, productID, partial)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("product_id", productID).Msg("invalid product update provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoRows):
			log.Err(err).Str("product_id", productID).Msg("product not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Product not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("product_id", productID).Msg("product update ended with error")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID := chi.URLParam(r, "product_id")

	if _, err := h.services.ProductService.DeleteProduct(ctx, productID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoRows):
			log.Err(err).Str("product_id", productID).Msg("product not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Product not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("product_id", productID).Msg("product deletion ended with error")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, models.DetailResponse{Detail: "Product deleted"}, http.StatusOK)
}
