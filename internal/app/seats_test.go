package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/cinebook/movie-booking-api/internal/mocks"
	"github.com/shopspring/decimal"
)

const seatMapURL = "/api/seats?movieId=1&theater=PVR%20Phoenix&date=2026-09-15&time=19:30"

func validHoldRequest() api.HoldSeatsRequest {
	return api.HoldSeatsRequest{
		MovieId: 1,
		Theater: "PVR Phoenix",
		Date:    "2026-09-15",
		Time:    "19:30",
		Seats:   []string{"A1", "A2"},
	}
}

func TestGetSeatMap(t *testing.T) {
	movieFound := func(ctx context.Context, id int64) (*domain.Movie, error) {
		return &domain.Movie{ID: id, Title: "Heat", Year: 1995, Genre: "Crime", Ratings: 8.3}, nil
	}
	noSeats := func(ctx context.Context, showing domain.Showing) ([]string, error) {
		return nil, nil
	}

	t.Run("full layout with booked and held seats marked", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.movieRepo = &mocks.MockMovieRepo{GetByIdFunc: movieFound}
			a.bookingRepo = &mocks.MockBookingRepo{
				GetBookedSeatsFunc: func(ctx context.Context, showing domain.Showing) ([]string, error) {
					return []string{"A1", "D5"}, nil
				},
			}
			a.seatHoldRepo = &mocks.MockSeatHoldRepo{
				HeldSeatsFunc: func(ctx context.Context, showing domain.Showing) ([]string, error) {
					return []string{"J12"}, nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodGet, seatMapURL, nil)

		app.GetSeatMap(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("GetSeatMap() status = %v, want %v, body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp api.SeatMapResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(resp.SeatRows) != domain.SeatRows {
			t.Fatalf("seat rows = %d, want %d", len(resp.SeatRows), domain.SeatRows)
		}

		seatsByID := make(map[string]api.Seat)
		for _, row := range resp.SeatRows {
			if len(row.Seats) != domain.SeatsPerRow {
				t.Errorf("row %s has %d seats, want %d", row.Row, len(row.Seats), domain.SeatsPerRow)
			}
			for _, seat := range row.Seats {
				seatsByID[seat.Id] = seat
			}
		}

		for _, unavailable := range []string{"A1", "D5", "J12"} {
			if seatsByID[unavailable].Available {
				t.Errorf("seat %s available = true, want false", unavailable)
			}
		}

		if !seatsByID["A2"].Available {
			t.Error("seat A2 available = false, want true")
		}

		checkSeatPricing := []struct {
			id        string
			seatType  string
			wantPrice decimal.Decimal
		}{
			{"A1", "premium", decimal.NewFromInt(300)},
			{"D5", "regular", decimal.NewFromInt(200)},
			{"J12", "economy", decimal.NewFromInt(150)},
		}
		for _, tc := range checkSeatPricing {
			seat := seatsByID[tc.id]
			if seat.Type != tc.seatType {
				t.Errorf("seat %s type = %q, want %q", tc.id, seat.Type, tc.seatType)
			}
			if !seat.Price.Equal(tc.wantPrice) {
				t.Errorf("seat %s price = %s, want %s", tc.id, seat.Price, tc.wantPrice)
			}
		}
	})

	t.Run("malformed movieId", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/api/seats?movieId=abc&theater=PVR&date=2026-09-15&time=19:30", nil)

		app.GetSeatMap(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("GetSeatMap() status = %v, want %v", w.Code, http.StatusBadRequest)
		}

		checkErrorResponse(t, w, http.StatusBadRequest, MsgInvalidMovieID)
	})

	t.Run("missing showing parameters", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/api/seats?movieId=1", nil)

		app.GetSeatMap(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("GetSeatMap() status = %v, want %v", w.Code, http.StatusBadRequest)
		}

		checkValidationError(t, w, "Theater is required")
	})

	t.Run("unknown movie", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.movieRepo = &mocks.MockMovieRepo{
				GetByIdFunc: func(ctx context.Context, id int64) (*domain.Movie, error) {
					return nil, domain.ErrRecordNotFound
				},
			}
		})

		w, r := executeRequest(t, http.MethodGet, seatMapURL, nil)

		app.GetSeatMap(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("GetSeatMap() status = %v, want %v", w.Code, http.StatusNotFound)
		}

		checkErrorResponse(t, w, http.StatusNotFound, MsgMovieNotFound)
	})

	t.Run("hold store error", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.movieRepo = &mocks.MockMovieRepo{GetByIdFunc: movieFound}
			a.bookingRepo = &mocks.MockBookingRepo{GetBookedSeatsFunc: noSeats}
			a.seatHoldRepo = &mocks.MockSeatHoldRepo{
				HeldSeatsFunc: func(ctx context.Context, showing domain.Showing) ([]string, error) {
					return nil, fmt.Errorf("redis connection error")
				},
			}
		})

		w, r := executeRequest(t, http.MethodGet, seatMapURL, nil)

		app.GetSeatMap(w, r)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("GetSeatMap() status = %v, want %v", w.Code, http.StatusInternalServerError)
		}

		checkErrorResponse(t, w, http.StatusInternalServerError, ErrInternalServer)
	})
}

func TestHoldSeats(t *testing.T) {
	noBookedSeats := func(ctx context.Context, showing domain.Showing) ([]string, error) {
		return nil, nil
	}

	t.Run("successful hold", func(t *testing.T) {
		var heldSeats []string
		var heldTTL time.Duration

		app := newTestApplication(func(a *application) {
			a.bookingRepo = &mocks.MockBookingRepo{GetBookedSeatsFunc: noBookedSeats}
			a.seatHoldRepo = &mocks.MockSeatHoldRepo{
				HoldSeatsFunc: func(ctx context.Context, showing domain.Showing, seats []string, token string, ttl time.Duration) error {
					heldSeats = seats
					heldTTL = ttl
					return nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/api/seats/hold", validHoldRequest())

		app.HoldSeats(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("HoldSeats() status = %v, want %v, body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		if len(heldSeats) != 2 || heldTTL != domain.SeatHoldTTL {
			t.Errorf("hold store received (%v, %v), want 2 seats with a %v TTL", heldSeats, heldTTL, domain.SeatHoldTTL)
		}

		var resp api.HoldSeatsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if resp.HoldToken == "" {
			t.Error("response hold token is empty")
		}

		if resp.ExpiresAt.Before(time.Now()) {
			t.Errorf("expiry %v is in the past", resp.ExpiresAt)
		}
	})

	t.Run("eleven seats exceed the per-hold cap", func(t *testing.T) {
		input := validHoldRequest()
		input.Seats = nil
		for i := 1; i <= 11; i++ {
			input.Seats = append(input.Seats, fmt.Sprintf("B%d", i))
		}

		app := newTestApplication()

		w, r := executeRequest(t, http.MethodPost, "/api/seats/hold", input)

		app.HoldSeats(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("HoldSeats() status = %v, want %v", w.Code, http.StatusBadRequest)
		}

		checkValidationError(t, w, "Seats must be at most 10")
	})

	t.Run("duplicate seats in one request", func(t *testing.T) {
		input := validHoldRequest()
		input.Seats = []string{"A1", "A1"}

		app := newTestApplication()

		w, r := executeRequest(t, http.MethodPost, "/api/seats/hold", input)

		app.HoldSeats(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("HoldSeats() status = %v, want %v", w.Code, http.StatusBadRequest)
		}

		checkValidationError(t, w, "Seats must not contain duplicates")
	})

	t.Run("seat already booked", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.bookingRepo = &mocks.MockBookingRepo{
				GetBookedSeatsFunc: func(ctx context.Context, showing domain.Showing) ([]string, error) {
					return []string{"A2"}, nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/api/seats/hold", validHoldRequest())

		app.HoldSeats(w, r)

		if w.Code != http.StatusConflict {
			t.Errorf("HoldSeats() status = %v, want %v", w.Code, http.StatusConflict)
		}

		checkErrorResponse(t, w, http.StatusConflict, "Seat A2 is already booked")
	})

	t.Run("seat already held by someone else", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.bookingRepo = &mocks.MockBookingRepo{GetBookedSeatsFunc: noBookedSeats}
			a.seatHoldRepo = &mocks.MockSeatHoldRepo{
				HoldSeatsFunc: func(ctx context.Context, showing domain.Showing, seats []string, token string, ttl time.Duration) error {
					return domain.ErrSeatAlreadyHeld
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/api/seats/hold", validHoldRequest())

		app.HoldSeats(w, r)

		if w.Code != http.StatusConflict {
			t.Errorf("HoldSeats() status = %v, want %v", w.Code, http.StatusConflict)
		}

		checkErrorResponse(t, w, http.StatusConflict, "One or more selected seats are already held")
	})
}
