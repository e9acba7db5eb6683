package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

// ErrorResponse is the body of every handled failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Message string `json:"message"`
}

// SuccessResponse acknowledges a session operation
// swagger:model SuccessResponse
type SuccessResponse struct {
	// default: true
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// decodeBody decodes a JSON request body into v. An empty body is reported
// as io.EOF so callers with optional bodies can tell it apart.
func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeLookup answers a get-by-id call. A missing document is not an error:
// the response is 200 with a null body.
func writeLookup[T any](w http.ResponseWriter, doc *T, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, doc)
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusOK, nil)
	default:
		writeServiceError(w, err)
	}
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, models.ErrInvalidDelta):
		writeError(w, http.StatusBadRequest, "Invalid increment")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized Access")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}
