// Package api holds the request and response shapes of the public REST
// surface. Responses carry the success-envelope contract the browser client
// consumes.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Errors    []string  `json:"errors,omitempty"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Stack     string    `json:"stack,omitempty"`
}

type Movie struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Genre       string    `json:"genre"`
	Ratings     float64   `json:"ratings"`
	PosterImage string    `json:"posterImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Year        *int     `json:"year" validate:"required,year_range"`
	Genre       string   `json:"genre" validate:"required,genre"`
	Ratings     *float64 `json:"ratings" validate:"required,min=0,max=10"`
	PosterImage string   `json:"posterImage" validate:"omitempty,max=500"`
}

type MovieListResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Data    []Movie `json:"data"`
}

type MovieResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Movie  `json:"data"`
}

type Theater struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=200"`
}

type BookingSeat struct {
	Id    string          `json:"id" validate:"required,seat_id"`
	Type  string          `json:"type" validate:"required,oneof=premium regular economy"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

type Booking struct {
	Id            int64           `json:"id"`
	BookingId     string          `json:"bookingId"`
	MovieId       int64           `json:"movieId"`
	MovieTitle    string          `json:"movieTitle"`
	Theater       Theater         `json:"theater"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Seats         []BookingSeat   `json:"seats"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Status        string          `json:"status"`
	UserEmail     string          `json:"userEmail"`
	UserName      string          `json:"userName"`
	BookingDate   time.Time       `json:"bookingDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type BookingRequest struct {
	MovieId       int64         `json:"movieId" validate:"required"`
	Theater       Theater       `json:"theater" validate:"required"`
	Date          string        `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string        `json:"time" validate:"required,max=20"`
	Seats         []BookingSeat `json:"seats" validate:"required,min=1,max=10,dive"`
	PaymentMethod string        `json:"paymentMethod" validate:"required,oneof=card upi wallet"`
	PaymentStatus string        `json:"paymentStatus" validate:"omitempty,oneof=pending completed failed refunded"`
	UserEmail     string        `json:"userEmail" validate:"required,email"`
	UserName      string        `json:"userName" validate:"required,max=100"`
}

type BookingListResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Booking `json:"data"`
}

type BookingResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    Booking `json:"data"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming completed cancelled"`
}

type BookingStats struct {
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	Upcoming      int             `json:"upcoming"`
	Completed     int             `json:"completed"`
	Cancelled     int             `json:"cancelled"`
}

type BookingStatsResponse struct {
	Success bool         `json:"success"`
	Data    BookingStats `json:"data"`
}

type CreateOrderRequest struct {
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency" validate:"omitempty,len=3"`
	Receipt  string            `json:"receipt" validate:"omitempty,max=40"`
	Notes    map[string]string `json:"notes" validate:"omitempty,max=15"`
}

type CreateOrderResponse struct {
	Success  bool   `json:"success"`
	OrderId  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyId    string `json:"keyId"`
}

type VerifySignatureRequest struct {
	RazorpayOrderId   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentId string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type VerifySignatureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Seat struct {
	Id        string          `json:"id"`
	Row       string          `json:"row"`
	Number    int             `json:"number"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapParams struct {
	MovieId int64  `validate:"required,min=1"`
	Theater string `validate:"required,max=100"`
	Date    string `validate:"required,datetime=2006-01-02"`
	Time    string `validate:"required,max=20"`
}

type SeatMapResponse struct {
	Success  bool      `json:"success"`
	MovieId  int64     `json:"movieId"`
	Theater  string    `json:"theater"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	SeatRows []SeatRow `json:"seatRows"`
}

type HoldSeatsRequest struct {
	MovieId int64    `json:"movieId" validate:"required,min=1"`
	Theater string   `json:"theater" validate:"required,max=100"`
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string   `json:"time" validate:"required,max=20"`
	Seats   []string `json:"seats" validate:"required,min=1,max=10,unique,dive,seat_id"`
}

type HoldSeatsResponse struct {
	Success   bool      `json:"success"`
	HoldToken string    `json:"holdToken"`
	Seats     []string  `json:"seats"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	Timestamp  time.Time  `json:"timestamp"`
	Uptime     float64    `json:"uptime"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
