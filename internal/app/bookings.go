package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

const (
	MsgInvalidBookingID = "Invalid booking ID format"
	MsgBookingNotFound  = "Booking not found"
)

func (app *application) GetBookings(w http.ResponseWriter, r *http.Request) {
	filters := domain.BookingFilters{
		UserEmail: r.URL.Query().Get("userEmail"),
		Status:    domain.BookingStatus(r.URL.Query().Get("status")),
	}

	switch filters.Status {
	case "", domain.BookingStatusUpcoming, domain.BookingStatusCompleted, domain.BookingStatusCancelled:
	default:
		app.badRequestResponse(w, r, "Invalid booking status filter")
		return
	}

	bookings, err := app.bookingRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Success: true,
		Count:   len(bookings),
		Data:    toAPIBookings(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// findBooking resolves the path parameter either as the store id or, for
// "BK"-prefixed values, as the human-readable booking code.
func (app *application) findBooking(r *http.Request) (*domain.Booking, error) {
	idParam := strings.TrimSpace(chi.URLParam(r, "id"))

	if strings.HasPrefix(idParam, "BK") {
		return app.bookingRepo.GetByCode(r.Context(), idParam)
	}

	id, err := app.readIDParam(r)
	if err != nil {
		return nil, errInvalidBookingID
	}

	return app.bookingRepo.GetById(r.Context(), id)
}

var errInvalidBookingID = errors.New("invalid booking id")

func (app *application) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := app.findBooking(r)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidBookingID):
			app.badRequestResponse(w, r, MsgInvalidBookingID)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		Success: true,
		Data:    toAPIBooking(booking),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.BookingRequest

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

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		app.badRequestResponse(w, r, "Invalid booking date")
		return
	}

	seats := toDomainSeats(input.Seats)

	paymentStatus := domain.PaymentStatus(input.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentStatusCompleted
	}

	booking := domain.Booking{
		BookingCode: domain.NewBookingCode(),
		MovieID:     movie.ID,
		MovieTitle:  movie.Title,
		Theater: domain.Theater{
			Name:     input.Theater.Name,
			Location: input.Theater.Location,
		},
		Date:          date,
		ShowTime:      input.Time,
		Seats:         seats,
		TotalAmount:   domain.TotalOfSeats(seats),
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
		PaymentStatus: paymentStatus,
		Status:        domain.BookingStatusUpcoming,
		UserEmail:     input.UserEmail,
		UserName:      input.UserName,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sendBookingConfirmation(r, &booking)

	resp := api.BookingResponse{
		Success: true,
		Message: "Booking created successfully",
		Data:    toAPIBooking(&booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation delivers the confirmation mail off the request
// path; a mail failure never fails the booking.
func (app *application) sendBookingConfirmation(r *http.Request, booking *domain.Booking) {
	go func(ctx context.Context) {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("panic occurred during sending confirmation mail", "panic", err)
			}
		}()

		seatLabels := make([]string, len(booking.Seats))
		for i, seat := range booking.Seats {
			seatLabels[i] = seat.ID
		}

		data := map[string]any{
			"bookingCode":     booking.BookingCode,
			"userName":        booking.UserName,
			"movieTitle":      booking.MovieTitle,
			"theaterName":     booking.Theater.Name,
			"theaterLocation": booking.Theater.Location,
			"date":            booking.Date.Format("2006-01-02"),
			"time":            booking.ShowTime,
			"seats":           strings.Join(seatLabels, ", "),
			"totalAmount":     booking.TotalAmount.String(),
		}

		err := app.mailer.Send(booking.UserEmail, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation email", "error", err, "booking_code", booking.BookingCode)
		}
	}(r.Context())
}

func (app *application) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	booking, err := app.findBooking(r)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidBookingID):
			app.badRequestResponse(w, r, MsgInvalidBookingID)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input api.BookingStatusRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	updated, err := app.bookingRepo.UpdateStatus(r.Context(), booking.ID, domain.BookingStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingResponse{
		Success: true,
		Message: "Booking status updated successfully",
		Data:    toAPIBooking(updated),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBooking implements DELETE as a cancellation: the record survives with
// status "cancelled" so the stats and history keep it.
func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := app.findBooking(r)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidBookingID):
			app.badRequestResponse(w, r, MsgInvalidBookingID)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r, MsgBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	cancelled, err := app.bookingRepo.UpdateStatus(r.Context(), booking.ID, domain.BookingStatusCancelled)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingResponse{
		Success: true,
		Message: "Booking cancelled successfully",
		Data:    toAPIBooking(cancelled),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.bookingRepo.GetStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingStatsResponse{
		Success: true,
		Data: api.BookingStats{
			TotalBookings: stats.TotalBookings,
			TotalRevenue:  stats.TotalRevenue,
			Upcoming:      stats.Upcoming,
			Completed:     stats.Completed,
			Cancelled:     stats.Cancelled,
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainSeats(seats []api.BookingSeat) []domain.SeatSelection {
	domainSeats := make([]domain.SeatSelection, len(seats))
	for i, seat := range seats {
		domainSeats[i] = domain.SeatSelection{
			ID:    seat.Id,
			Type:  domain.SeatType(seat.Type),
			Price: seat.Price,
		}
	}

	return domainSeats
}

func toAPIBooking(booking *domain.Booking) api.Booking {
	if booking == nil {
		return api.Booking{}
	}

	seats := make([]api.BookingSeat, len(booking.Seats))
	for i, seat := range booking.Seats {
		seats[i] = api.BookingSeat{
			Id:    seat.ID,
			Type:  string(seat.Type),
			Price: seat.Price,
		}
	}

	return api.Booking{
		Id:         booking.ID,
		BookingId:  booking.BookingCode,
		MovieId:    booking.MovieID,
		MovieTitle: booking.MovieTitle,
		Theater: api.Theater{
			Name:     booking.Theater.Name,
			Location: booking.Theater.Location,
		},
		Date:          booking.Date.Format("2006-01-02"),
		Time:          booking.ShowTime,
		Seats:         seats,
		TotalAmount:   booking.TotalAmount,
		PaymentMethod: string(booking.PaymentMethod),
		PaymentStatus: string(booking.PaymentStatus),
		Status:        string(booking.Status),
		UserEmail:     booking.UserEmail,
		UserName:      booking.UserName,
		BookingDate:   booking.BookingDate,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func toAPIBookings(bookings []*domain.Booking) []api.Booking {
	apiBookings := make([]api.Booking, len(bookings))
	for i, booking := range bookings {
		apiBookings[i] = toAPIBooking(booking)
	}

	return apiBookings
}
