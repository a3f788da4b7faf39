package mocks

import (
	"context"

	"github.com/cinebook/movie-booking-api/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	GetAllFunc         func(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, error)
	GetByIdFunc        func(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCodeFunc      func(ctx context.Context, code string) (*domain.Booking, error)
	CreateFunc         func(ctx context.Context, booking *domain.Booking) error
	UpdateStatusFunc   func(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	GetStatsFunc       func(ctx context.Context) (*domain.BookingStats, error)
	GetBookedSeatsFunc func(ctx context.Context, showing domain.Showing) ([]string, error)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return m.GetByCodeFunc(ctx, code)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *MockBookingRepo) GetStats(ctx context.Context) (*domain.BookingStats, error) {
	return m.GetStatsFunc(ctx)
}

func (m *MockBookingRepo) GetBookedSeats(ctx context.Context, showing domain.Showing) ([]string, error) {
	return m.GetBookedSeatsFunc(ctx, showing)
}
