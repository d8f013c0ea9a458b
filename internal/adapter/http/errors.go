package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"snaplink/internal/core/domain"
)

type errorResponse struct {
	Code   string            `json:"code"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type dataResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorFunc writes err as the response of r.
type errorFunc func(w http.ResponseWriter, r *http.Request, err error)

// writeError maps err onto a status code and error body. Unexpected errors
// are logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:  "VALIDATION_FAILED",
			Error: "Validation failed",
			Fields: lo.MapValues(verrs, func(e error, _ string) string {
				return e.Error()
			}),
		})
	case errors.Is(err, domain.ErrMissingID):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Code: "MISSING_ID", Error: "Missing ID"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INSUFFICIENT_FUNDS", Error: "Insufficient Credits"})
	case errors.Is(err, domain.ErrBadRequest):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_REQUEST", Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Error: "Not found"})
	case errors.Is(err, domain.ErrForbidden):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Code: "FORBIDDEN", Error: "Forbidden"})
	case errors.Is(err, domain.ErrInvalidActor):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Error: "Unauthorized"})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Error: "Internal server error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
