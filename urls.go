package paysafecard

// Urls holds the redirect and notification URLs for a payment flow.
//
// The success and failure URLs are where the provider sends the customer
// back after the hosted authorization page; the notification URL receives
// asynchronous status updates.
type Urls struct {
	successURL      string
	failureURL      string
	notificationURL string
}

// NewUrls creates a Urls value from one, two or three URLs:
//
//   - one URL: used for success, failure and notification alike
//   - two URLs: the first for success and failure, the second for notification
//   - three URLs: success, failure and notification, in that order
//
// Any other number of arguments leaves all three URLs empty. Callers rely on
// this fallback, so it is not an error.
func NewUrls(urls ...string) Urls {
	switch len(urls) {
	case 1:
		return Urls{successURL: urls[0], failureURL: urls[0], notificationURL: urls[0]}
	case 2:
		return Urls{successURL: urls[0], failureURL: urls[0], notificationURL: urls[1]}
	case 3:
		return Urls{successURL: urls[0], failureURL: urls[1], notificationURL: urls[2]}
	}
	return Urls{}
}

// SuccessURL returns the URL the customer is sent to after authorizing.
func (u Urls) SuccessURL() string { return u.successURL }

// FailureURL returns the URL the customer is sent to after aborting.
func (u Urls) FailureURL() string { return u.failureURL }

// NotificationURL returns the webhook URL for asynchronous status updates.
func (u Urls) NotificationURL() string { return u.notificationURL }

// WithSuccessURL returns a copy with a different success URL.
func (u Urls) WithSuccessURL(url string) Urls {
	u.successURL = url
	return u
}

// WithFailureURL returns a copy with a different failure URL.
func (u Urls) WithFailureURL(url string) Urls {
	u.failureURL = url
	return u
}

// WithNotificationURL returns a copy with a different notification URL.
func (u Urls) WithNotificationURL(url string) Urls {
	u.notificationURL = url
	return u
}
