package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,

	store.ErrNoRows:           http.StatusNotFound,
	store.ErrStoreUnavailable: http.StatusInternalServerError,
	store.ErrStoreRejected:    http.StatusInternalServerError,
	store.ErrDecodingResponse: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
