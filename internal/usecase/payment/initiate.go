package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/metrics"
	"github.com/Ka-few/Beauty-parlor-app/internal/mpesa"
)

// Gateway is the subset of the M-Pesa client used to push a payment.
type Gateway interface {
	AccessToken(ctx context.Context) (string, error)
	STKPush(ctx context.Context, token string, p mpesa.Payment) (*mpesa.GatewayResponse, error)
}

type InitiatePaymentInput struct {
	CustomerID uint
	// Amount is a JSON number or numeric string; it is rounded to whole shillings.
	Amount      any
	PhoneNumber string
	BookingID   uint
}

type InitiatePayment struct {
	bookings booking.Repository
	gateway  Gateway
	audit    audit.Sink
}

func NewInitiatePayment(bookings booking.Repository, gateway Gateway, audit audit.Sink) *InitiatePayment {
	return &InitiatePayment{bookings: bookings, gateway: gateway, audit: audit}
}

// Execute returns the gateway reply untouched, including gateway rejections.
func (uc *InitiatePayment) Execute(ctx context.Context, in InitiatePaymentInput) (*mpesa.GatewayResponse, error) {
	phone := strings.TrimSpace(in.PhoneNumber)
	if in.Amount == nil || phone == "" || in.BookingID == 0 {
		return nil, httperr.Validation("Amount, phone number and booking are required")
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	b, err := uc.bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("Booking not found")
		}
		return nil, err
	}

	token, err := uc.gateway.AccessToken(ctx)
	if err != nil {
		zap.L().Error("mpesa access token failed", zap.Uint("booking_id", b.ID), zap.Error(err))
		metrics.PaymentsInitiated.WithLabelValues("token_error").Inc()
		return nil, httperr.InternalErr("Failed to get M-Pesa access token")
	}

	resp, err := uc.gateway.STKPush(ctx, token, mpesa.Payment{
		Amount:      amount,
		PhoneNumber: phone,
		Reference:   fmt.Sprintf("Booking%d", b.ID),
		Description: "Payment for " + b.Service.Title,
	})
	if err != nil {
		zap.L().Error("mpesa stk push failed", zap.Uint("booking_id", b.ID), zap.Error(err))
		metrics.PaymentsInitiated.WithLabelValues("transport_error").Inc()
		return nil, httperr.InternalErr("Failed to initiate M-Pesa payment")
	}

	outcome := "rejected"
	checkoutID := ""
	if resp.OK() {
		outcome = "accepted"
		checkoutID = mpesa.CheckoutRequestID(resp.Body)
		if checkoutID != "" {
			if err := uc.bookings.SetPaymentIntent(ctx, b.ID, checkoutID); err != nil {
				zap.L().Error("store payment intent failed", zap.Uint("booking_id", b.ID), zap.Error(err))
			}
		}
	}
	metrics.PaymentsInitiated.WithLabelValues(outcome).Inc()

	uc.audit.Dispatch(ctx, audit.Event{
		CustomerID: &in.CustomerID,
		Action:     audit.ActionPaymentInitiated,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]any{
			"amount":              amount,
			"gateway_status":      resp.StatusCode,
			"checkout_request_id": checkoutID,
		},
	})

	return resp, nil
}

func parseAmount(raw any) (int, error) {
	if _, ok := raw.(bool); ok {
		return 0, httperr.Validation("Amount must be a number")
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, httperr.Validation("Amount must be a number")
	}
	amount := int(math.Round(f))
	if amount <= 0 {
		return 0, httperr.Validation("Amount must be greater than zero")
	}
	return amount, nil
}
