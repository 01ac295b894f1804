package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
	"go.uber.org/zap"
)

// MessageResponse is the body shape for errors and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

// respondServiceError maps domain sentinels to HTTP status codes. Unmapped
// errors become 500s with the wrapped message in the body; this system has
// no confidentiality requirement on error detail.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, repository.ErrDuplicateEmail):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, err.Error())
	}
}
