package paysafecard_test

import (
	"testing"

	paysafecard "github.com/sebastianwalker/paysafecard-go"
	"github.com/stretchr/testify/assert"
)

func TestNewAmount(t *testing.T) {
	a := paysafecard.NewAmount(20.00, "USD")
	assert.Equal(t, 20.00, a.Value())
	assert.Equal(t, "USD", a.Currency())
}

func TestNewAmount_Defaults(t *testing.T) {
	a := paysafecard.NewAmount(0, "")
	assert.Equal(t, 0.0, a.Value())
	assert.Equal(t, "EUR", a.Currency())

	var zero paysafecard.Amount
	assert.Equal(t, "EUR", zero.Currency())
}

func TestAmount_WithBuilders(t *testing.T) {
	a := paysafecard.NewAmount(20.00, "EUR")

	assert.Equal(t, 35.50, a.WithValue(35.50).Value())
	assert.Equal(t, "CHF", a.WithCurrency("CHF").Currency())

	// the original value is untouched
	assert.Equal(t, 20.00, a.Value())
	assert.Equal(t, "EUR", a.Currency())
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "20.00 EUR", paysafecard.NewAmount(20, "EUR").String())
	assert.Equal(t, "9.90 CHF", paysafecard.NewAmount(9.9, "CHF").String())
}
