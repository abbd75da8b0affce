package paysafecard

import "fmt"

// Status is a payment status as reported by the provider. The provider owns
// all state transitions; the client only mirrors the status it was given.
type Status string

const (
	StatusInitiated        Status = "INITIATED"
	StatusRedirected       Status = "REDIRECTED"
	StatusAuthorized       Status = "AUTHORIZED"
	StatusSuccess          Status = "SUCCESS"
	StatusCanceledMerchant Status = "CANCELED_MERCHANT"
	StatusCanceledCustomer Status = "CANCELED_CUSTOMER"
	StatusExpired          Status = "EXPIRED"
)

// ParseStatus converts a provider status string into a Status. Values outside
// the known set are rejected rather than carried along silently.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusInitiated, StatusRedirected, StatusAuthorized, StatusSuccess,
		StatusCanceledMerchant, StatusCanceledCustomer, StatusExpired:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}
