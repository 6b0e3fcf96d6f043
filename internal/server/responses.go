package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	apperrors "task-scheduler/internal/errors"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const (
	// maxBodyBytes bounds request bodies.
	maxBodyBytes = 1 << 20

	unexpectedErrorMessage = "An unexpected error occurred. Please try again."
)

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode JSON response")
	}
}

// RespondWithError maps err to a status code and writes the safe user message.
// Server-side failures are logged at error level, caller mistakes at debug.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)

	logger := hlog.FromRequest(r)
	event := logger.Debug()
	if apperrors.ShouldLogError(err) {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("code", apperrors.GetErrorCode(err)).
		Msg("request failed")

	message := unexpectedErrorMessage
	if apperrors.IsAppError(err) {
		message = apperrors.GetUserMessage(err)
	}
	RespondWithJSON(w, r, status, ErrorResponse{
		Error: message,
		Code:  apperrors.GetErrorCode(err),
	})
}

// StatusFor returns the HTTP status code for an application error.
func StatusFor(err error) int {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeInvalidInput, apperrors.ErrorTypeInvalidDate:
		return http.StatusBadRequest
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads a single JSON object from the request body into dst.
// Unknown fields and trailing data are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return apperrors.NewInvalidInputError("body", nil, "malformed JSON: "+err.Error())
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.NewInvalidInputError("body", nil, "must contain a single JSON object")
	}
	return nil
}
