package payment

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/infra/memory"
	"github.com/Ka-few/Beauty-parlor-app/internal/metrics"
	"github.com/Ka-few/Beauty-parlor-app/internal/mpesa"
	"github.com/Ka-few/Beauty-parlor-app/internal/seed"
)

type fakeGateway struct {
	tokenErr error
	pushErr  error
	resp     *mpesa.GatewayResponse
	pushed   []mpesa.Payment
}

func (f *fakeGateway) AccessToken(context.Context) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return "tok", nil
}

func (f *fakeGateway) STKPush(_ context.Context, token string, p mpesa.Payment) (*mpesa.GatewayResponse, error) {
	f.pushed = append(f.pushed, p)
	if f.pushErr != nil {
		return nil, f.pushErr
	}
	return f.resp, nil
}

func setup(t *testing.T, gw *fakeGateway) (*memory.Store, *audit.Memory, *InitiatePayment) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Run(context.Background(), seed.Repos{
		Customers: store.Customers(),
		Catalog:   store.Catalog(),
		Bookings:  store.Bookings(),
		Tx:        store,
	}, "secret", time.Now()))

	sink := audit.NewMemory()
	return store, sink, NewInitiatePayment(store.Bookings(), gw, sink)
}

func TestInitiatePaymentStoresCheckoutID(t *testing.T) {
	gw := &fakeGateway{resp: &mpesa.GatewayResponse{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        []byte(`{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0"}`),
	}}
	store, sink, uc := setup(t, gw)
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.PaymentsInitiated.WithLabelValues("accepted"))

	resp, err := uc.Execute(ctx, InitiatePaymentInput{CustomerID: 1, Amount: "29.6", PhoneNumber: "0712345678", BookingID: 1})
	require.NoError(t, err)
	assert.Same(t, gw.resp, resp)

	require.Len(t, gw.pushed, 1)
	assert.Equal(t, 30, gw.pushed[0].Amount)
	assert.Equal(t, "Booking1", gw.pushed[0].Reference)

	b, err := store.Bookings().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_1", b.PaymentIntentID)
	assert.Equal(t, "pending", b.PaymentStatus)

	assert.Equal(t, []string{audit.ActionPaymentInitiated}, sink.Actions())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PaymentsInitiated.WithLabelValues("accepted")))
}

func TestInitiatePaymentPassesRejectionThrough(t *testing.T) {
	gw := &fakeGateway{resp: &mpesa.GatewayResponse{
		StatusCode: http.StatusBadRequest,
		Body:       []byte(`{"errorMessage":"Invalid PhoneNumber"}`),
	}}
	store, _, uc := setup(t, gw)

	resp, err := uc.Execute(context.Background(), InitiatePaymentInput{Amount: 30.0, PhoneNumber: "0712345678", BookingID: 2})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	b, err := store.Bookings().GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, b.PaymentIntentID)
}

func TestInitiatePaymentErrors(t *testing.T) {
	ctx := context.Background()

	_, _, uc := setup(t, &fakeGateway{})
	_, err := uc.Execute(ctx, InitiatePaymentInput{Amount: 30.0, PhoneNumber: "0712345678", BookingID: 99})
	assert.EqualError(t, err, "Booking not found")

	_, err = uc.Execute(ctx, InitiatePaymentInput{PhoneNumber: "0712345678", BookingID: 1})
	assert.True(t, httperr.IsBusiness(err, httperr.KindValidation))

	_, err = uc.Execute(ctx, InitiatePaymentInput{Amount: "abc", PhoneNumber: "0712345678", BookingID: 1})
	assert.EqualError(t, err, "Amount must be a number")

	for _, raw := range []any{"NaN", "Inf", "1e400", math.NaN()} {
		_, err = uc.Execute(ctx, InitiatePaymentInput{Amount: raw, PhoneNumber: "0712345678", BookingID: 1})
		assert.EqualError(t, err, "Amount must be a number")
	}

	_, err = uc.Execute(ctx, InitiatePaymentInput{Amount: 0.2, PhoneNumber: "0712345678", BookingID: 1})
	assert.EqualError(t, err, "Amount must be greater than zero")

	_, _, uc = setup(t, &fakeGateway{tokenErr: mpesa.ErrAccessToken})
	_, err = uc.Execute(ctx, InitiatePaymentInput{Amount: 30.0, PhoneNumber: "0712345678", BookingID: 1})
	assert.True(t, httperr.IsBusiness(err, httperr.KindInternal))
	assert.EqualError(t, err, "Failed to get M-Pesa access token")

	_, _, uc = setup(t, &fakeGateway{pushErr: errors.New("connection refused")})
	_, err = uc.Execute(ctx, InitiatePaymentInput{Amount: 30.0, PhoneNumber: "0712345678", BookingID: 1})
	assert.True(t, httperr.IsBusiness(err, httperr.KindInternal))
}

func TestReceiveCallbackAcceptsAnything(t *testing.T) {
	sink := audit.NewMemory()
	uc := NewReceiveCallback(sink)

	s := uc.Execute(context.Background(), []byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_1","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`))
	assert.True(t, s.Valid)
	assert.Equal(t, int64(1032), s.ResultCode)

	s = uc.Execute(context.Background(), []byte("garbage"))
	assert.False(t, s.Valid)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionPaymentCallbackReceived, events[1].Action)
	assert.Equal(t, "garbage", events[1].Metadata)
}
