package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetUsers(ctx)
	if err != nil {
		log.Err(err).Msg("users fetch ended with error")
		utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registered, err := h.services.UserService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid user data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoRows):
			// the store acknowledged the insert but echoed no row back
			log.Err(err).Msg("user insert returned no rows")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("user registration ended with error")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, registered, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.UserCredentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidDataProvided):
			// unknown email and wrong password answer identically
			log.Err(err).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Usuario o contraseña incorrectos"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("login ended with error")
			utils.WriteJSON(w, models.ErrorResponse{Error: "store error"}, statusFromError(err))
			return
		}
	}

	token, err := h.services.UserService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message: "Login exitoso",
		Token:   token.SignedString,
		User:    user,
	}, http.StatusOK)
}
