package app

import (
	"fmt"
	"net/http"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MsgInvalidAmount    = "Invalid amount"
	MsgPaymentVerified  = "Payment verified"
	MsgInvalidSignature = "Invalid signature"
)

var minOrderAmount = decimal.NewFromInt(1)

// CreateOrder creates a gateway order the browser checkout widget opens
// against. The amount arrives in major currency units and is converted to
// minor units before it reaches the gateway.
func (app *application) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input api.CreateOrderRequest

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

	if input.Amount.LessThan(minOrderAmount) {
		app.badRequestResponse(w, r, MsgInvalidAmount)
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	receipt := input.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%s", uuid.NewString())
	}

	minorUnits := input.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	order, err := app.paymentGateway.CreateOrder(r.Context(), minorUnits, currency, receipt, input.Notes)
	if err != nil {
		app.gatewayErrorResponse(w, r, err)
		return
	}

	resp := api.CreateOrderResponse{
		Success:  true,
		OrderId:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyId:    app.paymentGateway.KeyID(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// VerifySignature checks the HMAC the gateway's checkout callback handed to
// the client. The outcome is not persisted and not linked to any booking.
func (app *application) VerifySignature(w http.ResponseWriter, r *http.Request) {
	var input api.VerifySignatureRequest

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

	verified := payment.VerifySignature(
		input.RazorpayOrderId,
		input.RazorpayPaymentId,
		input.RazorpaySignature,
		app.config.razorpay.keySecret,
	)

	if !verified {
		app.badRequestResponse(w, r, MsgInvalidSignature)
		return
	}

	resp := api.VerifySignatureResponse{
		Success: true,
		Message: MsgPaymentVerified,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
