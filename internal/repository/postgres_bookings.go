package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

const bookingColumns = `id, booking_code, movie_id, movie_title, theater_name, theater_location,
	date, show_time, seats, total_amount, payment_method, payment_status, status,
	user_email, user_name, booking_date, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var seatsJSON []byte

	err := row.Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.MovieID,
		&booking.MovieTitle,
		&booking.Theater.Name,
		&booking.Theater.Location,
		&booking.Date,
		&booking.ShowTime,
		&seatsJSON,
		&booking.TotalAmount,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.Status,
		&booking.UserEmail,
		&booking.UserName,
		&booking.BookingDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(seatsJSON, &booking.Seats)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	filters domain.BookingFilters) ([]*domain.Booking, error) {

	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR lower(user_email) = lower($1))
			AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC`

	rows, err := p.db.Query(ctx, query, filters.UserEmail, string(filters.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1`

	booking, err := scanBooking(p.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	seatsJSON, err := json.Marshal(booking.Seats)
	if err != nil {
		return err
	}

	query := `INSERT INTO bookings (booking_code, movie_id, movie_title, theater_name,
			theater_location, date, show_time, seats, total_amount, payment_method,
			payment_status, status, user_email, user_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, booking_date, created_at, updated_at`

	return p.db.QueryRow(ctx,
		query,
		booking.BookingCode,
		booking.MovieID,
		booking.MovieTitle,
		booking.Theater.Name,
		booking.Theater.Location,
		booking.Date,
		booking.ShowTime,
		seatsJSON,
		booking.TotalAmount,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.Status,
		booking.UserEmail,
		booking.UserName,
	).Scan(&booking.ID, &booking.BookingDate, &booking.CreatedAt, &booking.UpdatedAt)
}

func (p *PostgresBookingRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.BookingStatus) (*domain.Booking, error) {

	query := `UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + bookingColumns

	booking, err := scanBooking(p.db.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) GetStats(ctx context.Context) (*domain.BookingStats, error) {
	query := `SELECT
			count(*),
			COALESCE(sum(total_amount) FILTER (WHERE status <> 'cancelled'), 0),
			count(*) FILTER (WHERE status = 'upcoming'),
			count(*) FILTER (WHERE status = 'completed'),
			count(*) FILTER (WHERE status = 'cancelled')
		FROM bookings`

	var stats domain.BookingStats

	err := p.db.QueryRow(ctx, query).Scan(
		&stats.TotalBookings,
		&stats.TotalRevenue,
		&stats.Upcoming,
		&stats.Completed,
		&stats.Cancelled,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (p *PostgresBookingRepository) GetBookedSeats(
	ctx context.Context,
	showing domain.Showing) ([]string, error) {

	date, err := time.Parse("2006-01-02", showing.Date)
	if err != nil {
		return nil, err
	}

	query := `SELECT seat ->> 'id'
		FROM bookings, jsonb_array_elements(seats) AS seat
		WHERE movie_id = $1
			AND lower(theater_name) = lower($2)
			AND date = $3
			AND show_time = $4
			AND status <> 'cancelled'`

	rows, err := p.db.Query(ctx, query, showing.MovieID, showing.Theater, date, showing.ShowTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []string{}

	for rows.Next() {
		var seatID string

		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}

		seats = append(seats, seatID)
	}

	return seats, rows.Err()
}
