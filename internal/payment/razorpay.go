package payment

import (
	"context"
	"fmt"

	"github.com/cinebook/movie-booking-api/internal/domain"
	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway creates orders against the Razorpay Orders API. It is
// constructed once at startup and injected into the payment handlers.
type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

func (g *RazorpayGateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency, receipt string,
	notes map[string]string) (*domain.PaymentOrder, error) {

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, ok := order["id"].(string)
	if !ok {
		return nil, fmt.Errorf("gateway returned order without an id")
	}

	paymentOrder := &domain.PaymentOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}

	// Prefer the amount and currency echoed back by the gateway.
	if v, ok := order["amount"].(float64); ok {
		paymentOrder.Amount = int64(v)
	}
	if v, ok := order["currency"].(string); ok {
		paymentOrder.Currency = v
	}

	return paymentOrder, nil
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}
