package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hifz-planner/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
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

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyBreakdown),
		errors.Is(err, domain.ErrInvalidPace):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrRevisionPending),
		errors.Is(err, domain.ErrPlanComplete):
		return http.StatusConflict
	case errors.Is(err, domain.ErrMalformedMetadata):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes the error body for err. Internal errors are logged
// and hidden from the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)

	resp := errorResponse{}
	switch status {
	case http.StatusBadRequest:
		resp.Error = err.Error()
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp.Error = "validation failed"
			for _, fe := range verr.Errors {
				resp.Fields = append(resp.Fields, fieldError(fe))
			}
		}
	case http.StatusUnauthorized:
		resp.Error = "unauthorized"
	case http.StatusNotFound:
		resp.Error = "not found"
		if errors.Is(err, domain.ErrPageNotFound) {
			resp.Error = "page not found"
		}
	case http.StatusConflict:
		resp.Error = conflictMessage(err)
	case http.StatusBadGateway:
		log.WarnContext(r.Context(), "upstream error", slog.String("error", err.Error()))
		resp.Error = "scripture metadata unavailable"
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return "plan already exists"
	case errors.Is(err, domain.ErrRevisionPending):
		return "revision pending"
	case errors.Is(err, domain.ErrPlanComplete):
		return "plan already complete"
	default:
		return "conflict"
	}
}

// decodeJSON reads a single JSON object from the body, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid request body: trailing data")
	}
	return nil
}
