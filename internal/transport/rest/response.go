package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlens/internal/domain"
)

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind       string       `json:"kind"`
	Message    string       `json:"message"`
	StatusCode int          `json:"status_code,omitempty"`
	Fields     []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Kind: kind, Message: message}})
}

// handleError maps service errors to HTTP responses: validation errors are
// 400 with per-field details, everything else is a logged 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		detail := errorDetail{Kind: "validation", Message: ve.Error()}
		for _, fe := range ve.Errors {
			detail.Fields = append(detail.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: detail})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrNotInitialized):
		log.WarnContext(r.Context(), "component not initialized", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "not_initialized", err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// writeGeneration writes generated text, or the tagged failure with 502.
// Bad input is the caller's fault and gets 400.
func writeGeneration(w http.ResponseWriter, res domain.GenerationResult) {
	if res.OK() {
		writeJSON(w, http.StatusOK, map[string]string{"text": res.Text})
		return
	}

	status := http.StatusBadGateway
	if res.Failure.Kind == domain.FailureInvalidInput {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: errorDetail{
		Kind:       string(res.Failure.Kind),
		Message:    res.Failure.Message,
		StatusCode: res.Failure.StatusCode,
	}})
}
