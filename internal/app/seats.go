package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/google/uuid"
)

// GetSeatMap returns the hall layout for one showing with availability
// derived from non-cancelled bookings and unexpired holds. This is the
// authoritative inventory the client renders instead of inventing one.
func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	params, err := seatMapParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showing := domain.Showing{
		MovieID:  params.MovieId,
		Theater:  params.Theater,
		Date:     params.Date,
		ShowTime: params.Time,
	}

	_, err = app.movieRepo.GetById(r.Context(), showing.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	unavailable, err := app.unavailableSeats(r, showing)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	seats := domain.NewSeatLayout()
	for i := range seats {
		if unavailable[seats[i].ID] {
			seats[i].Available = false
		}
	}

	resp := api.SeatMapResponse{
		Success:  true,
		MovieId:  showing.MovieID,
		Theater:  showing.Theater,
		Date:     showing.Date,
		Time:     showing.ShowTime,
		SeatRows: toSeatRows(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) unavailableSeats(r *http.Request, showing domain.Showing) (map[string]bool, error) {
	bookedSeats, err := app.bookingRepo.GetBookedSeats(r.Context(), showing)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats: %w", err)
	}

	heldSeats, err := app.seatHoldRepo.HeldSeats(r.Context(), showing)
	if err != nil {
		return nil, fmt.Errorf("failed to get held seats: %w", err)
	}

	unavailable := make(map[string]bool)

	for _, seatID := range bookedSeats {
		unavailable[seatID] = true
	}

	for _, seatID := range heldSeats {
		unavailable[seatID] = true
	}

	return unavailable, nil
}

// HoldSeats places a short-lived, all-or-nothing hold on up to ten seats.
// Holds are advisory: they shape the seat map but booking creation does not
// check them, so they mitigate rather than close the double-booking window.
func (app *application) HoldSeats(w http.ResponseWriter, r *http.Request) {
	var input api.HoldSeatsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showing := domain.Showing{
		MovieID:  input.MovieId,
		Theater:  input.Theater,
		Date:     input.Date,
		ShowTime: input.Time,
	}

	bookedSeats, err := app.bookingRepo.GetBookedSeats(r.Context(), showing)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booked := make(map[string]bool, len(bookedSeats))
	for _, seatID := range bookedSeats {
		booked[seatID] = true
	}

	for _, seatID := range input.Seats {
		if booked[seatID] {
			app.editConflictResponse(w, r, fmt.Sprintf("Seat %s is already booked", seatID))
			return
		}
	}

	token := uuid.NewString()

	err = app.seatHoldRepo.HoldSeats(r.Context(), showing, input.Seats, token, domain.SeatHoldTTL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyHeld):
			app.editConflictResponse(w, r, "One or more selected seats are already held")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.HoldSeatsResponse{
		Success:   true,
		HoldToken: token,
		Seats:     input.Seats,
		ExpiresAt: time.Now().Add(domain.SeatHoldTTL),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func seatMapParams(r *http.Request) (api.SeatMapParams, error) {
	query := r.URL.Query()

	movieID, err := strconv.ParseInt(query.Get("movieId"), 10, 64)
	if err != nil {
		return api.SeatMapParams{}, errors.New(MsgInvalidMovieID)
	}

	return api.SeatMapParams{
		MovieId: movieID,
		Theater: query.Get("theater"),
		Date:    query.Get("date"),
		Time:    query.Get("time"),
	}, nil
}

func toSeatRows(seats []domain.Seat) []api.SeatRow {
	// Seats arrive pre-sorted by row and number, so one pass groups them.
	var seatRows []api.SeatRow
	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, api.Seat{
			Id:        v.ID,
			Row:       v.Row,
			Number:    v.Number,
			Type:      string(v.Type),
			Price:     v.Price,
			Available: v.Available,
		})
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}
