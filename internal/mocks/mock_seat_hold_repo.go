package mocks

import (
	"context"
	"time"

	"github.com/cinebook/movie-booking-api/internal/domain"
)

type MockSeatHoldRepo struct {
	domain.SeatHoldRepository
	HoldSeatsFunc    func(ctx context.Context, showing domain.Showing, seats []string, token string, ttl time.Duration) error
	HeldSeatsFunc    func(ctx context.Context, showing domain.Showing) ([]string, error)
	ReleaseSeatsFunc func(ctx context.Context, showing domain.Showing, seats []string, token string) error
}

func (m *MockSeatHoldRepo) HoldSeats(ctx context.Context, showing domain.Showing, seats []string, token string, ttl time.Duration) error {
	return m.HoldSeatsFunc(ctx, showing, seats, token, ttl)
}

func (m *MockSeatHoldRepo) HeldSeats(ctx context.Context, showing domain.Showing) ([]string, error) {
	return m.HeldSeatsFunc(ctx, showing)
}

func (m *MockSeatHoldRepo) ReleaseSeats(ctx context.Context, showing domain.Showing, seats []string, token string) error {
	return m.ReleaseSeatsFunc(ctx, showing, seats, token)
}
