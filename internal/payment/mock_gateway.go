package payment

import (
	"context"

	"github.com/cinebook/movie-booking-api/internal/domain"
)

type MockGateway struct {
	CreateOrderFunc func(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*domain.PaymentOrder, error)
	Key             string
}

func (m *MockGateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency, receipt string,
	notes map[string]string) (*domain.PaymentOrder, error) {

	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, amount, currency, receipt, notes)
	}

	return &domain.PaymentOrder{
		ID:       "order_mock",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (m *MockGateway) KeyID() string {
	if m.Key == "" {
		return "rzp_test_mock"
	}

	return m.Key
}
