package domain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// SeatSelection is one seat line on a booking: the seat label (e.g. "C7"),
// its pricing tier and the unit price charged for it.
type SeatSelection struct {
	ID    string          `json:"id"`
	Type  SeatType        `json:"type"`
	Price decimal.Decimal `json:"price"`
}

type Theater struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Booking struct {
	ID            int64
	BookingCode   string
	MovieID       int64
	MovieTitle    string
	Theater       Theater
	Date          time.Time
	ShowTime      string
	Seats         []SeatSelection
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        BookingStatus
	UserEmail     string
	UserName      string
	BookingDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TotalOfSeats sums the per-seat prices of a selection.
func TotalOfSeats(seats []SeatSelection) decimal.Decimal {
	total := decimal.Zero
	for _, s := range seats {
		total = total.Add(s.Price)
	}

	return total
}

const bookingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingCode generates the human-readable booking identifier: a "BK"
// prefix, the last six digits of the current unix-millisecond clock and three
// random alphanumerics. Assigned once at creation and never reassigned.
func NewBookingCode() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	suffix := millis[len(millis)-6:]

	var sb strings.Builder
	for range 3 {
		sb.WriteByte(bookingCodeAlphabet[rand.IntN(len(bookingCodeAlphabet))])
	}

	return "BK" + suffix + sb.String()
}

type BookingFilters struct {
	UserEmail string
	Status    BookingStatus
}

type BookingStats struct {
	TotalBookings int
	TotalRevenue  decimal.Decimal
	Upcoming      int
	Completed     int
	Cancelled     int
}

// Showing identifies one nominal showtime of a movie. Bookings don't reference
// a first-class showtime entity; the tuple itself is the identity.
type Showing struct {
	MovieID  int64
	Theater  string
	Date     string
	ShowTime string
}

type BookingRepository interface {
	GetAll(ctx context.Context, filters BookingFilters) ([]*Booking, error)
	GetById(ctx context.Context, id int64) (*Booking, error)
	GetByCode(ctx context.Context, code string) (*Booking, error)
	Create(ctx context.Context, booking *Booking) error
	UpdateStatus(ctx context.Context, id int64, status BookingStatus) (*Booking, error)
	GetStats(ctx context.Context) (*BookingStats, error)
	GetBookedSeats(ctx context.Context, showing Showing) ([]string, error)
}
