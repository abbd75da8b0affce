package paysafecard

import "fmt"

// DefaultCurrency is used when an Amount is constructed without a currency.
const DefaultCurrency = "EUR"

// Amount is a monetary value with a 3-letter ISO 4217 currency code.
//
// Amount performs no validation. Callers are expected to supply a value with
// at most two decimal places and a valid currency code; malformed input is
// passed through to the API unchanged and rejected there.
type Amount struct {
	value    float64
	currency string
}

// NewAmount creates an Amount. An empty currency defaults to EUR.
func NewAmount(value float64, currency string) Amount {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Amount{value: value, currency: currency}
}

// Value returns the numeric value.
func (a Amount) Value() float64 { return a.value }

// Currency returns the currency code.
func (a Amount) Currency() string {
	if a.currency == "" {
		return DefaultCurrency
	}
	return a.currency
}

// WithValue returns a copy of the amount with a different value.
func (a Amount) WithValue(value float64) Amount {
	return NewAmount(value, a.currency)
}

// WithCurrency returns a copy of the amount with a different currency.
func (a Amount) WithCurrency(currency string) Amount {
	return NewAmount(a.value, currency)
}

// String returns a human-readable representation of the amount.
func (a Amount) String() string {
	return fmt.Sprintf("%.2f %s", a.value, a.Currency())
}
