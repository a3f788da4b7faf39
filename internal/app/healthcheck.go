package app

import (
	"net/http"
	"time"

	"github.com/cinebook/movie-booking-api/api"
)

func (app *application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status:    "OK",
		Timestamp: time.Now(),
		Uptime:    time.Since(app.startTime).Seconds(),
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.env,
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *application) GetIndex(w http.ResponseWriter, r *http.Request) {
	resp := api.IndexResponse{
		Message: "Welcome to Movie Booking API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"GET /api/movies":                     "Get all movies",
			"POST /api/movies":                    "Create a new movie",
			"GET /api/movies/{id}":                "Get movie by ID",
			"PUT /api/movies/{id}":                "Update movie by ID",
			"DELETE /api/movies/{id}":             "Delete movie by ID",
			"GET /api/bookings":                   "Get all bookings (query: userEmail, status)",
			"POST /api/bookings":                  "Create a new booking",
			"GET /api/bookings/{id}":              "Get booking by ID or booking code",
			"PATCH /api/bookings/{id}/status":     "Update booking status",
			"DELETE /api/bookings/{id}":           "Cancel booking",
			"GET /api/bookings/stats/summary":     "Get booking statistics",
			"POST /api/payments/create-order":     "Create a payment order",
			"POST /api/payments/verify-signature": "Verify a payment signature",
			"GET /api/seats":                      "Get the seat map for a showing",
			"POST /api/seats/hold":                "Place a temporary hold on seats",
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
