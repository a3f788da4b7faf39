package app

import (
	"net/http"
	"time"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrValidation       = "Validation Error"
	ErrRouteNotFound    = "Route not found"
	ErrMethodNotAllowed = "Method not allowed for this route"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.errorResponseWithDetails(w, r, status, message, nil, "")
}

func (app *application) errorResponseWithDetails(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	errs []string,
	stack string) {

	resp := api.ErrorResponse{
		Success:   false,
		Message:   message,
		Errors:    errs,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
		Stack:     stack,
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

// gatewayErrorResponse surfaces an upstream payment gateway failure, passing
// the gateway's own message through to the client.
func (app *application) gatewayErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) notFoundRouteResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrRouteNotFound)
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusBadRequest, message)
}

func (app *application) editConflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusConflict, message)
}

// failedValidationResponse aggregates the per-field validation messages into
// the structured error list of the API contract.
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	messages := validator.ValidationMessages(err)

	app.errorResponseWithDetails(w, r, http.StatusBadRequest, ErrValidation, messages, "")
}
