package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidReportRange: http.StatusBadRequest,

	service.ErrInvalidInput:          http.StatusBadRequest,
	service.ErrNotReady:              http.StatusServiceUnavailable,
	service.ErrNothingToDecrypt:      http.StatusNotFound,
	service.ErrDecryptionInFlight:    http.StatusConflict,
	service.ErrSessionChanged:        http.StatusConflict,
	service.ErrSnapshotSuperseded:    http.StatusConflict,
	service.ErrCacheCapacityExceeded: http.StatusInsufficientStorage,
	service.ErrLoadFailure:           http.StatusBadGateway,
	service.ErrDecryptionFailure:     http.StatusBadGateway,
	service.ErrMutationFailure:       http.StatusBadGateway,

	store.ErrSessionNotFound:   http.StatusNotFound,
	store.ErrCorruptedSnapshot: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRows:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
