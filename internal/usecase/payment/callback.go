package payment

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/metrics"
	"github.com/Ka-few/Beauty-parlor-app/internal/mpesa"
)

// ReceiveCallback records a gateway callback. It never fails and does not
// touch any booking.
type ReceiveCallback struct {
	audit audit.Sink
}

func NewReceiveCallback(audit audit.Sink) *ReceiveCallback {
	return &ReceiveCallback{audit: audit}
}

func (uc *ReceiveCallback) Execute(ctx context.Context, payload []byte) mpesa.CallbackSummary {
	s := mpesa.SummarizeCallback(payload)

	code := "invalid"
	if s.Valid {
		code = strconv.FormatInt(s.ResultCode, 10)
	}
	metrics.PaymentCallbacks.WithLabelValues(code).Inc()

	zap.L().Info("mpesa callback received",
		zap.Bool("valid_json", s.Valid),
		zap.String("checkout_request_id", s.CheckoutRequestID),
		zap.Int64("result_code", s.ResultCode),
		zap.String("result_desc", s.ResultDesc),
		zap.String("receipt", s.ReceiptNumber),
	)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionPaymentCallbackReceived,
		Entity:   "payment",
		Metadata: string(payload),
	})
	return s
}
