package domain

import "context"

// PaymentOrder is a gateway-side order the browser checkout widget opens
// against. Amount is in minor currency units (paise for INR).
type PaymentOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentGateway creates orders against the payment provider. The concrete
// client is constructed at startup and injected into the handlers.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*PaymentOrder, error)

	// KeyID returns the gateway's public key, which the client needs to open
	// the checkout widget.
	KeyID() string
}
