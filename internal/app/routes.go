package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundRouteResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("movie-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.config.clientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", app.GetIndex)
	r.Get("/health", app.GetHealth)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Get("/{id}", app.GetMovie)
		r.Put("/{id}", app.UpdateMovie)
		r.Delete("/{id}", app.DeleteMovie)
	})

	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", app.GetBookings)
		r.Post("/", app.CreateBooking)
		r.Get("/stats/summary", app.GetBookingStats)
		r.Get("/{id}", app.GetBooking)
		r.Patch("/{id}/status", app.UpdateBookingStatus)
		r.Delete("/{id}", app.CancelBooking)
	})

	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/create-order", app.CreateOrder)
		r.Post("/verify-signature", app.VerifySignature)
	})

	r.Route("/api/seats", func(r chi.Router) {
		r.Get("/", app.GetSeatMap)
		r.Post("/hold", app.HoldSeats)
	})

	return r
}
