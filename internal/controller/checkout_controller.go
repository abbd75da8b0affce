package controller

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	paysafecard "github.com/sebastianwalker/paysafecard-go"
)

// CheckoutController drives the redirect-based payment flow: it creates a
// payment, sends the customer to the provider-hosted authorization page and
// captures the payment once the customer returns.
type CheckoutController struct {
	client *paysafecard.Client
	logger zerolog.Logger
}

// NewCheckoutController creates a checkout controller backed by the given
// payment client.
func NewCheckoutController(client *paysafecard.Client, logger zerolog.Logger) *CheckoutController {
	return &CheckoutController{client: client, logger: logger}
}

// Pay creates a payment and redirects the customer to the authorization
// page. The amount comes from the "amount" query parameter (default 20.00
// EUR); the customer id is generated when none is given.
func (c *CheckoutController) Pay(w http.ResponseWriter, r *http.Request) {
	value := 20.00
	if raw := r.URL.Query().Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid amount", Code: "invalid_amount"})
			return
		}
		value = parsed
	}

	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		customerID = "customer_" + uuid.New().String()[:8]
	}

	payment := paysafecard.NewPayment(paysafecard.NewAmount(value, "EUR"), customerID)
	if err := payment.Create(r.Context(), c.client); err != nil {
		c.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to create payment")
		writeError(w, err)
		return
	}

	c.logger.Info().
		Str("payment_id", payment.ID()).
		Str("status", string(payment.Status())).
		Msg("payment created")

	http.Redirect(w, r, payment.AuthURL(), http.StatusFound)
}

// Capture is the success-return endpoint: it looks up the payment the
// customer was redirected from and captures it when it is authorized.
func (c *CheckoutController) Capture(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("payment_id")
	if paymentID == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "payment_id is required", Code: "missing_payment_id"})
		return
	}

	payment, err := paysafecard.FindPayment(r.Context(), c.client, paymentID)
	if err != nil {
		c.logger.Error().Err(err).Str("payment_id", paymentID).Msg("failed to find payment")
		writeError(w, err)
		return
	}

	switch {
	case payment.IsAuthorized():
		if err := payment.Capture(r.Context(), c.client); err != nil {
			c.logger.Error().Err(err).Str("payment_id", paymentID).Msg("failed to capture payment")
			writeError(w, err)
			return
		}
		c.logger.Info().Str("payment_id", payment.ID()).Msg("payment captured")
		writeJSON(w, http.StatusOK, paymentResponse(payment))

	case payment.IsFailed():
		writeJSON(w, http.StatusUnprocessableEntity, paymentResponse(payment))

	default:
		writeJSON(w, http.StatusOK, paymentResponse(payment))
	}
}

// Failure is the failure-return endpoint.
func (c *CheckoutController) Failure(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "payment aborted by customer"})
}

// Notify acknowledges asynchronous provider notifications. The demo only
// logs them; real state always comes from FindPayment.
func (c *CheckoutController) Notify(w http.ResponseWriter, r *http.Request) {
	c.logger.Info().
		Str("payment_id", r.URL.Query().Get("payment_id")).
		Msg("received provider notification")
	w.WriteHeader(http.StatusOK)
}

func paymentResponse(p *paysafecard.Payment) map[string]any {
	return map[string]any{
		"id":          p.ID(),
		"status":      string(p.Status()),
		"amount":      p.Amount().Value(),
		"currency":    p.Amount().Currency(),
		"customer_id": p.CustomerID(),
		"successful":  p.IsSuccessful(),
	}
}
