package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	paysafecard "github.com/sebastianwalker/paysafecard-go"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the JSON error body returned by the demo endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps payment client errors onto HTTP statuses. Business-rule
// rejections are the shopper's problem, provider failures are a bad gateway.
func writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var paymentErr *paysafecard.PaymentError
	if errors.As(err, &paymentErr) {
		resp.Code = "payment_rejected"
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	var notFoundErr *paysafecard.NotFoundError
	if errors.As(err, &notFoundErr) {
		resp.Code = "not_found"
		writeJSON(w, http.StatusNotFound, resp)
		return
	}

	var authErr *paysafecard.AuthenticationError
	if errors.As(err, &authErr) {
		resp.Code = "authentication_failed"
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}

	var apiErr *paysafecard.APIError
	if errors.As(err, &apiErr) {
		resp.Code = "provider_error"
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}

	log.Error().Err(err).Msg("unhandled error in handler")
	resp.Code = "internal_error"
	resp.Error = "internal server error"
	writeJSON(w, http.StatusInternalServerError, resp)
}
