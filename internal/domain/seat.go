package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SeatType string

const (
	SeatTypePremium SeatType = "premium"
	SeatTypeRegular SeatType = "regular"
	SeatTypeEconomy SeatType = "economy"
)

// Hall layout: ten lettered rows of twelve seats. The first three rows are
// premium, the last three economy, everything between regular.
const (
	SeatRows        = 10
	SeatsPerRow     = 12
	premiumRowCount = 3
	economyRowStart = 7

	// MaxSeatsPerHold caps how many seats a single hold (and by extension a
	// single booking) may cover.
	MaxSeatsPerHold = 10

	// SeatHoldTTL is how long a hold keeps a seat out of the inventory.
	SeatHoldTTL = 5 * time.Minute
)

var seatPrices = map[SeatType]decimal.Decimal{
	SeatTypePremium: decimal.NewFromInt(300),
	SeatTypeRegular: decimal.NewFromInt(200),
	SeatTypeEconomy: decimal.NewFromInt(150),
}

func SeatPrice(t SeatType) decimal.Decimal {
	return seatPrices[t]
}

type Seat struct {
	ID        string
	Row       string
	Number    int
	Type      SeatType
	Price     decimal.Decimal
	Available bool
}

func seatTypeForRow(rowIndex int) SeatType {
	switch {
	case rowIndex < premiumRowCount:
		return SeatTypePremium
	case rowIndex >= economyRowStart:
		return SeatTypeEconomy
	default:
		return SeatTypeRegular
	}
}

// NewSeatLayout builds the full hall layout with every seat available.
// Availability is overlaid afterwards from bookings and active holds.
func NewSeatLayout() []Seat {
	seats := make([]Seat, 0, SeatRows*SeatsPerRow)

	for row := range SeatRows {
		label := string(rune('A' + row))
		seatType := seatTypeForRow(row)

		for num := 1; num <= SeatsPerRow; num++ {
			seats = append(seats, Seat{
				ID:        fmt.Sprintf("%s%d", label, num),
				Row:       label,
				Number:    num,
				Type:      seatType,
				Price:     SeatPrice(seatType),
				Available: true,
			})
		}
	}

	return seats
}

// IsValidSeatID reports whether a seat label exists in the hall layout.
func IsValidSeatID(id string) bool {
	if len(id) < 2 || len(id) > 3 {
		return false
	}

	row := id[0]
	if row < 'A' || row >= 'A'+SeatRows {
		return false
	}

	num := 0
	for _, ch := range id[1:] {
		if ch < '0' || ch > '9' {
			return false
		}
		num = num*10 + int(ch-'0')
	}

	return num >= 1 && num <= SeatsPerRow
}

// SeatHold is a short-lived, advisory reservation of seats for one showing.
// It only shapes the seat inventory; booking creation does not require one.
type SeatHold struct {
	Token     string
	Showing   Showing
	Seats     []string
	ExpiresAt time.Time
}

type SeatHoldRepository interface {
	// HoldSeats places a TTL hold on every seat or none of them.
	// Returns ErrSeatAlreadyHeld if any seat is currently held.
	HoldSeats(ctx context.Context, showing Showing, seats []string, token string, ttl time.Duration) error

	// HeldSeats returns the seat labels currently under an unexpired hold.
	HeldSeats(ctx context.Context, showing Showing) ([]string, error)

	// ReleaseSeats drops the holds owned by token. Unknown seats are ignored.
	ReleaseSeats(ctx context.Context, showing Showing, seats []string, token string) error
}
