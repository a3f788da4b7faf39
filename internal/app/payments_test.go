package app

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/cinebook/movie-booking-api/api"
	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/cinebook/movie-booking-api/internal/payment"
	"github.com/shopspring/decimal"
)

func TestCreateOrder(t *testing.T) {
	tests := []struct {
		name            string
		input           api.CreateOrderRequest
		createOrderFunc func(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*domain.PaymentOrder, error)
		wantStatus      int
		wantErrMessage  string
		wantFieldErrMsg string
		wantAmount      int64
		wantCurrency    string
	}{
		{
			name:  "major units are converted to minor units",
			input: api.CreateOrderRequest{Amount: decimal.NewFromInt(100)},
			createOrderFunc: func(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*domain.PaymentOrder, error) {
				if amount != 10000 {
					t.Errorf("gateway received amount %d, want 10000", amount)
				}
				if currency != "INR" {
					t.Errorf("gateway received currency %q, want default INR", currency)
				}
				if !strings.HasPrefix(receipt, "rcpt_") {
					t.Errorf("gateway received receipt %q, want a generated rcpt_ receipt", receipt)
				}
				return &domain.PaymentOrder{ID: "order_abc123", Amount: amount, Currency: currency, Receipt: receipt}, nil
			},
			wantStatus:   http.StatusOK,
			wantAmount:   10000,
			wantCurrency: "INR",
		},
		{
			name:  "fractional major units round to the nearest paisa",
			input: api.CreateOrderRequest{Amount: decimal.RequireFromString("249.99"), Currency: "INR"},
			createOrderFunc: func(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*domain.PaymentOrder, error) {
				if amount != 24999 {
					t.Errorf("gateway received amount %d, want 24999", amount)
				}
				return &domain.PaymentOrder{ID: "order_abc124", Amount: amount, Currency: currency, Receipt: receipt}, nil
			},
			wantStatus:   http.StatusOK,
			wantAmount:   24999,
			wantCurrency: "INR",
		},
		{
			name:           "amount below one major unit",
			input:          api.CreateOrderRequest{Amount: decimal.RequireFromString("0.5")},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgInvalidAmount,
		},
		{
			name:           "negative amount",
			input:          api.CreateOrderRequest{Amount: decimal.NewFromInt(-10)},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgInvalidAmount,
		},
		{
			name:            "currency must be a three letter code",
			input:           api.CreateOrderRequest{Amount: decimal.NewFromInt(100), Currency: "RUPEES"},
			wantStatus:      http.StatusBadRequest,
			wantFieldErrMsg: "Currency must be exactly 3 characters long",
		},
		{
			name:  "gateway failure is surfaced",
			input: api.CreateOrderRequest{Amount: decimal.NewFromInt(100)},
			createOrderFunc: func(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*domain.PaymentOrder, error) {
				return nil, fmt.Errorf("gateway unreachable")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: "gateway unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.paymentGateway = &payment.MockGateway{
					CreateOrderFunc: tt.createOrderFunc,
					Key:             "rzp_test_abc",
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/api/payments/create-order", tt.input)

			app.CreateOrder(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateOrder() status = %v, want %v, body: %s", got, tt.wantStatus, w.Body.String())
			}

			if tt.wantFieldErrMsg != "" {
				checkValidationError(t, w, tt.wantFieldErrMsg)
				return
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				var resp api.CreateOrderResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if resp.Amount != tt.wantAmount {
					t.Errorf("response amount = %d, want %d", resp.Amount, tt.wantAmount)
				}
				if resp.Currency != tt.wantCurrency {
					t.Errorf("response currency = %q, want %q", resp.Currency, tt.wantCurrency)
				}
				if resp.KeyId != "rzp_test_abc" {
					t.Errorf("response key id = %q, want rzp_test_abc", resp.KeyId)
				}
			}
		})
	}
}

func signPayment(t *testing.T, orderID, paymentID, secret string) string {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_webhook_secret"

	validSignature := signPayment(t, "order_abc123", "pay_xyz789", secret)

	tamperedSignature := []byte(validSignature)
	if tamperedSignature[0] == 'a' {
		tamperedSignature[0] = 'b'
	} else {
		tamperedSignature[0] = 'a'
	}

	tests := []struct {
		name            string
		input           api.VerifySignatureRequest
		wantStatus      int
		wantErrMessage  string
		wantFieldErrMsg string
	}{
		{
			name: "valid signature",
			input: api.VerifySignatureRequest{
				RazorpayOrderId:   "order_abc123",
				RazorpayPaymentId: "pay_xyz789",
				RazorpaySignature: validSignature,
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "single character change invalidates the signature",
			input: api.VerifySignatureRequest{
				RazorpayOrderId:   "order_abc123",
				RazorpayPaymentId: "pay_xyz789",
				RazorpaySignature: string(tamperedSignature),
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgInvalidSignature,
		},
		{
			name: "signature for a different payment",
			input: api.VerifySignatureRequest{
				RazorpayOrderId:   "order_abc123",
				RazorpayPaymentId: "pay_other",
				RazorpaySignature: validSignature,
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgInvalidSignature,
		},
		{
			name: "missing payment id",
			input: api.VerifySignatureRequest{
				RazorpayOrderId:   "order_abc123",
				RazorpaySignature: validSignature,
			},
			wantStatus:      http.StatusBadRequest,
			wantFieldErrMsg: "RazorpayPaymentId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.config.razorpay.keySecret = secret
			})

			w, r := executeRequest(t, http.MethodPost, "/api/payments/verify-signature", tt.input)

			app.VerifySignature(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("VerifySignature() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantFieldErrMsg != "" {
				checkValidationError(t, w, tt.wantFieldErrMsg)
				return
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				var resp api.VerifySignatureResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if !resp.Success || resp.Message != MsgPaymentVerified {
					t.Errorf("response = %+v, want verified", resp)
				}
			}
		})
	}
}
