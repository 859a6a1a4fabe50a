package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-calculator/service"
)

// writeJSON encodes into a buffer first so a failed encode can still
// produce a clean 500.
func writeJSON(w http.ResponseWriter, logger *logrus.Logger, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.WithError(err).Warn("failed to write response")
	}
}

// requireJSON rejects request bodies that are not declared as JSON.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	return true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNegativePrincipal),
		errors.Is(err, service.ErrNegativeRate),
		errors.Is(err, service.ErrNonPositiveTerm),
		errors.Is(err, service.ErrNotFinite),
		errors.Is(err, service.ErrPrincipalTooLarge),
		errors.Is(err, service.ErrRateTooLarge),
		errors.Is(err, service.ErrTermTooLong),
		errors.Is(err, service.ErrUnknownField),
		errors.Is(err, service.ErrInvalidTenure):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
