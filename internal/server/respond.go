package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/shared"
)

const (
	msgNotFound = "Resource not found"
	msgInternal = "Internal server error"
)

// ParamError reports a query parameter that failed to parse. It wraps [shared.ErrInvalidArgument].
type ParamError struct {
	Name  string
	Value string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return shared.ErrInvalidArgument
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// statusFor maps an error to its response status and the message safe to show clients.
func statusFor(err error) (int, string) {
	var pe *ParamError
	switch {
	case errors.As(err, &pe):
		return http.StatusBadRequest, pe.Error()
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, shared.ErrInvalidArgument), errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// NotFoundHandler answers every request no other route claims.
type NotFoundHandler struct{}

func (NotFoundHandler) Routes() []string { return []string{"/"} }

func (NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}
