package paysafecard

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Default API base URLs. They can be overridden per client with
// WithBaseURLs, e.g. to point at a local fake in tests.
const (
	BaseURLTesting    = "https://apitest.paysafecard.com/v1"
	BaseURLProduction = "https://api.paysafecard.com/v1"
)

// Client is the single point of contact with the paysafecard API. It holds
// the API key, the redirect Urls shared by all payments created through it,
// and the testing/production switch.
//
// A Client is safe for sequential reuse across payments. It is not designed
// for concurrent mutation; callers sharing one across goroutines must
// serialize access.
type Client struct {
	apiKey        string
	urls          *Urls
	testing       bool
	testingURL    string
	productionURL string
	httpClient    *http.Client
	logger        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithUrls sets the redirect and notification URLs used for created payments.
func WithUrls(urls Urls) Option {
	return func(c *Client) { c.urls = &urls }
}

// WithTestingMode selects the testing system instead of production.
func WithTestingMode(testing bool) Option {
	return func(c *Client) { c.testing = testing }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithBaseURLs overrides the testing and production base URLs.
func WithBaseURLs(testing, production string) Option {
	return func(c *Client) {
		c.testingURL = testing
		c.productionURL = production
	}
}

// WithLogger sets the logger used for request/response logging. Logging is
// disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new API client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		testingURL:    BaseURLTesting,
		productionURL: BaseURLProduction,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAPIKey replaces the API key.
func (c *Client) SetAPIKey(apiKey string) { c.apiKey = apiKey }

// SetUrls replaces the redirect and notification URLs.
func (c *Client) SetUrls(urls Urls) { c.urls = &urls }

// Urls returns the configured redirect and notification URLs, or nil when
// none were set.
func (c *Client) Urls() *Urls { return c.urls }

// SetTestingMode switches between the testing and production system.
func (c *Client) SetTestingMode(testing bool) { c.testing = testing }

// TestingMode reports whether the client targets the testing system.
func (c *Client) TestingMode() bool { return c.testing }

// APIURL returns the base URL selected by the testing flag.
func (c *Client) APIURL() string {
	if c.testing {
		return c.testingURL
	}
	return c.productionURL
}

// ResourceURL returns the full request URL for a resource path such as
// "payments" or "payments/{id}/capture".
func (c *Client) ResourceURL(resource string) string {
	return c.APIURL() + "/" + resource
}

// Headers returns the headers attached to every API request. The API key
// doubles as the HTTP Basic username with no password.
func (c *Client) Headers() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(c.apiKey)),
	}
}

// SendRequest issues an API call and decodes the JSON response into result.
// body is JSON-encoded when non-nil; result may be nil when the caller does
// not need the response.
//
// The provider answers 200 on success and never any other 2xx code. Matching
// its documented contract, every status up to and including 200 is treated
// as success; anything above is translated into one of the typed errors
// (*APIError, *AuthenticationError, *NotFoundError, *PaymentError).
func (c *Client) SendRequest(ctx context.Context, method, resource string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.ResourceURL(resource)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.Headers() {
		req.Header.Set(k, v)
	}
	correlationID := uuid.New().String()
	req.Header.Set("Correlation-ID", correlationID)

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Str("correlation_id", correlationID).
		Msg("sending API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("correlation_id", correlationID).
		Msg("received API response")

	if resp.StatusCode > http.StatusOK {
		return translateError(resp.StatusCode, respBody)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// errorBody is the relevant subset of the provider's error response.
type errorBody struct {
	Number  int    `json:"number"`
	Param   string `json:"param"`
	Message string `json:"message"`
}

// translateError maps a non-success response onto the error taxonomy. HTTP
// 400 responses are dispatched further by the provider error number in the
// body.
func translateError(status int, body []byte) error {
	switch status {
	case http.StatusInternalServerError:
		return &APIError{Message: "Technical error on provider's end"}
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: "Authentication failed due to missing or invalid API key (10008)"}
	case http.StatusNotFound:
		return &NotFoundError{Message: "Resource not found"}
	case http.StatusBadRequest:
		var details errorBody
		// A malformed body dispatches to the unknown-error default below.
		_ = json.Unmarshal(body, &details)
		switch details.Number {
		case 10028:
			return &APIError{
				Message: fmt.Sprintf("Invalid request parameter: %s %s (10028)", details.Param, details.Message),
				Number:  10028,
			}
		case 2001:
			return &PaymentError{Message: "Transaction already exists (2001)", Number: 2001}
		case 2017:
			return &PaymentError{Message: "This payment is not capturable at the moment (2017)", Number: 2017}
		case 3001:
			return &PaymentError{Message: "Merchant is not active (3001)", Number: 3001}
		case 3007:
			return &PaymentError{Message: "Debit attempt after expiry of dispo time window (3007)", Number: 3007}
		default:
			return &APIError{
				Message: fmt.Sprintf("Unknown error (%d)", details.Number),
				Number:  details.Number,
			}
		}
	}
	// The provider's contract documents no other status. Returning a generic
	// error here keeps the failure visible instead of silently succeeding.
	return &APIError{
		Message:    fmt.Sprintf("Unexpected response status (%d)", status),
		HTTPStatus: status,
	}
}
