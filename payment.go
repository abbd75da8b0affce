package paysafecard

import (
	"context"
	"net/http"
)

// Payment mirrors one payment on the provider side. Its id, status and
// authorization URL are assigned by the provider and refreshed from every
// API response; the client never advances the status locally.
type Payment struct {
	id         string
	amount     Amount
	status     Status
	customerID string
	authURL    string
}

// NewPayment creates a payment to be initiated with Create. customerID is an
// identifier from the merchant's own system that uniquely identifies the
// customer.
func NewPayment(amount Amount, customerID string) *Payment {
	return &Payment{
		amount:     amount,
		customerID: customerID,
	}
}

// createRequest is the wire format of POST /payments.
type createRequest struct {
	Type            string          `json:"type"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	Redirect        redirectRequest `json:"redirect"`
	NotificationURL string          `json:"notification_url"`
	Customer        customerRef     `json:"customer"`
}

type redirectRequest struct {
	SuccessURL string `json:"success_url"`
	FailureURL string `json:"failure_url"`
}

type customerRef struct {
	ID string `json:"id"`
}

// paymentResponse is the response shape shared by all payment endpoints.
type paymentResponse struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
	Redirect *struct {
		AuthURL string `json:"auth_url"`
	} `json:"redirect"`
	Customer *customerRef `json:"customer"`
}

// Create initiates the payment. The client must have Urls configured; they
// become the redirect targets of the provider-hosted authorization page. On
// success the payment carries the provider-assigned id, status and
// authorization URL.
func (p *Payment) Create(ctx context.Context, client *Client) error {
	urls := client.Urls()
	if urls == nil {
		return ErrUrlsNotConfigured
	}

	req := createRequest{
		Type:     "PAYSAFECARD",
		Amount:   p.amount.Value(),
		Currency: p.amount.Currency(),
		Redirect: redirectRequest{
			SuccessURL: urls.SuccessURL(),
			FailureURL: urls.FailureURL(),
		},
		NotificationURL: urls.NotificationURL(),
		Customer:        customerRef{ID: p.customerID},
	}

	var res paymentResponse
	if err := client.SendRequest(ctx, http.MethodPost, "payments", req, &res); err != nil {
		return err
	}
	return p.fill(&res)
}

// Capture finalizes an authorized payment. When the payment is not in status
// AUTHORIZED no call is made and the payment is left unchanged.
func (p *Payment) Capture(ctx context.Context, client *Client) error {
	if !p.IsAuthorized() {
		return nil
	}

	var res paymentResponse
	if err := client.SendRequest(ctx, http.MethodPost, "payments/"+p.id+"/capture", nil, &res); err != nil {
		return err
	}
	return p.fill(&res)
}

// FindPayment fetches an existing payment by its provider-assigned id.
func FindPayment(ctx context.Context, client *Client, id string) (*Payment, error) {
	var res paymentResponse
	if err := client.SendRequest(ctx, http.MethodGet, "payments/"+id, nil, &res); err != nil {
		return nil, err
	}

	p := &Payment{}
	if err := p.fill(&res); err != nil {
		return nil, err
	}
	return p, nil
}

// fill overwrites the payment with data from an API response. The customer
// id is required; its absence is an error rather than a silent default. The
// payment is left untouched when the response is rejected.
func (p *Payment) fill(res *paymentResponse) error {
	if res.Customer == nil || res.Customer.ID == "" {
		return ErrMissingCustomerID
	}
	status, err := ParseStatus(res.Status)
	if err != nil {
		return err
	}

	p.id = res.ID
	p.amount = NewAmount(res.Amount, res.Currency)
	p.status = status
	p.customerID = res.Customer.ID
	if res.Redirect != nil {
		p.authURL = res.Redirect.AuthURL
	} else {
		p.authURL = ""
	}
	return nil
}

// ID returns the provider-assigned payment id.
func (p *Payment) ID() string { return p.id }

// Amount returns the payment amount.
func (p *Payment) Amount() Amount { return p.amount }

// Status returns the payment status as of the last API response.
func (p *Payment) Status() Status { return p.status }

// CustomerID returns the merchant-side customer identifier.
func (p *Payment) CustomerID() string { return p.customerID }

// AuthURL returns the provider-hosted authorization page URL. It is only
// populated by responses that include a redirect block, typically the one
// from Create.
func (p *Payment) AuthURL() string { return p.authURL }

// IsInitiated reports whether the payment was created but the customer has
// not been redirected yet.
func (p *Payment) IsInitiated() bool { return p.status == StatusInitiated }

// IsRedirected reports whether the customer is on the authorization page.
func (p *Payment) IsRedirected() bool { return p.status == StatusRedirected }

// IsAuthorized reports whether the payment is approved and ready for capture.
func (p *Payment) IsAuthorized() bool { return p.status == StatusAuthorized }

// IsSuccessful reports whether the payment was captured.
func (p *Payment) IsSuccessful() bool { return p.status == StatusSuccess }

// IsCancelled reports whether the payment was canceled by either side.
func (p *Payment) IsCancelled() bool {
	return p.status == StatusCanceledCustomer || p.status == StatusCanceledMerchant
}

// IsExpired reports whether the payment expired before authorization or
// capture.
func (p *Payment) IsExpired() bool { return p.status == StatusExpired }

// IsFailed is shorthand for all statuses of a failed payment, cancelled or
// expired.
func (p *Payment) IsFailed() bool { return p.IsCancelled() || p.IsExpired() }

// IsWaiting is shorthand for all statuses of a payment still waiting to be
// authorized.
func (p *Payment) IsWaiting() bool { return p.IsInitiated() || p.IsRedirected() }
