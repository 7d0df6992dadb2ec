package booking

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

// Only the initial state is ever written; the gateway callback does not
// move a booking to another status.
const (
	PaymentPending PaymentStatus = "pending"
)

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}
