package paysafecard_test

import (
	"testing"

	paysafecard "github.com/sebastianwalker/paysafecard-go"
	"github.com/stretchr/testify/assert"
)

func TestNewUrls_SingleURL(t *testing.T) {
	u := paysafecard.NewUrls("https://shop.example/return")

	assert.Equal(t, "https://shop.example/return", u.SuccessURL())
	assert.Equal(t, "https://shop.example/return", u.FailureURL())
	assert.Equal(t, "https://shop.example/return", u.NotificationURL())
}

func TestNewUrls_TwoURLs(t *testing.T) {
	u := paysafecard.NewUrls("https://shop.example/return", "https://shop.example/notify")

	assert.Equal(t, "https://shop.example/return", u.SuccessURL())
	assert.Equal(t, "https://shop.example/return", u.FailureURL())
	assert.Equal(t, "https://shop.example/notify", u.NotificationURL())
}

func TestNewUrls_ThreeURLs(t *testing.T) {
	u := paysafecard.NewUrls(
		"https://shop.example/success",
		"https://shop.example/failure",
		"https://shop.example/notify",
	)

	assert.Equal(t, "https://shop.example/success", u.SuccessURL())
	assert.Equal(t, "https://shop.example/failure", u.FailureURL())
	assert.Equal(t, "https://shop.example/notify", u.NotificationURL())
}

func TestNewUrls_InvalidArity(t *testing.T) {
	tests := []struct {
		name string
		urls []string
	}{
		{"no urls", nil},
		{"four urls", []string{"a", "b", "c", "d"}},
		{"five urls", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := paysafecard.NewUrls(tt.urls...)
			assert.Equal(t, "", u.SuccessURL())
			assert.Equal(t, "", u.FailureURL())
			assert.Equal(t, "", u.NotificationURL())
		})
	}
}

func TestUrls_WithBuilders(t *testing.T) {
	base := paysafecard.NewUrls("https://shop.example/return")

	changed := base.WithFailureURL("https://shop.example/failed")
	assert.Equal(t, "https://shop.example/failed", changed.FailureURL())
	assert.Equal(t, "https://shop.example/return", changed.SuccessURL())

	// the original value is untouched
	assert.Equal(t, "https://shop.example/return", base.FailureURL())

	assert.Equal(t, "https://a.example", base.WithSuccessURL("https://a.example").SuccessURL())
	assert.Equal(t, "https://n.example", base.WithNotificationURL("https://n.example").NotificationURL())
}
