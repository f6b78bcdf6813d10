// Package api holds the JSON response helpers shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mytheresa/go-storefront/models"
	"github.com/mytheresa/go-storefront/review"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, models.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err. Unexpected errors are logged and hidden behind msg.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error, msg string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		WriteMessage(w, status, msg)
		return
	}

	resp := ErrorResponse{Error: err.Error()}
	var ve *review.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = make(map[string]string, len(ve.Fields))
		for _, f := range ve.Fields {
			resp.Fields[f.Field] = f.Message
		}
	}
	WriteJSON(w, status, resp)
}
