package paysafecard

import "errors"

var (
	// ErrUrlsNotConfigured is returned by Payment.Create when the client has
	// no Urls configured. Setting them is a precondition for creating
	// payments.
	ErrUrlsNotConfigured = errors.New("client urls not configured")

	// ErrMissingCustomerID is returned when a provider response lacks the
	// required customer id field.
	ErrMissingCustomerID = errors.New("missing customer id in provider response")

	// ErrUnknownStatus is returned when a provider response carries a status
	// outside the documented set.
	ErrUnknownStatus = errors.New("unknown payment status")
)

// APIError is a provider-side or technical failure: HTTP 500, an unclassified
// 400 and any response status the API contract does not document. Number
// holds the provider error code when one was supplied, HTTPStatus the
// response status for undocumented codes; both are zero otherwise.
type APIError struct {
	Message    string
	Number     int
	HTTPStatus int
}

func (e *APIError) Error() string { return e.Message }

// AuthenticationError signals a missing or invalid API key.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// NotFoundError signals that the requested resource does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// PaymentError is a business-rule rejection tied to the specific payment,
// such as a duplicate transaction or a capture outside the dispo window.
// Number holds the provider error code.
type PaymentError struct {
	Message string
	Number  int
}

func (e *PaymentError) Error() string { return e.Message }
