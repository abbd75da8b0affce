// Package paysafecard is a client for the paysafecard payments REST API.
//
// A merchant application builds an Amount and the redirect Urls, creates a
// Payment and sends the customer to the returned authorization URL. Once the
// customer approved the payment on the provider-hosted page, the application
// captures it:
//
//	client := paysafecard.NewClient("psc_apikey",
//		paysafecard.WithUrls(paysafecard.NewUrls("https://shop.example/capture?payment_id={payment_id}")),
//		paysafecard.WithTestingMode(true),
//	)
//
//	payment := paysafecard.NewPayment(paysafecard.NewAmount(20.00, "EUR"), "customer123")
//	if err := payment.Create(ctx, client); err != nil {
//		// handle error
//	}
//	// redirect the customer to payment.AuthURL()
//
// All payment state lives on the provider side. The client never advances a
// payment locally; every Create, Capture and FindPayment call mirrors the
// state returned by the API.
package paysafecard
