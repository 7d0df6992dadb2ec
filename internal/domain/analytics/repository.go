package analytics

import "context"

type Totals struct {
	Users    int64
	Bookings int64
	Stylists int64
	// Revenue is the sum of the prices of every booked service.
	Revenue float64
}

type ServiceCount struct {
	ServiceName string
	Count       int64
}

type StylistCount struct {
	StylistName string
	Count       int64
}

// Repository aggregates over the whole store. Group results are ordered by
// count, highest first.
type Repository interface {
	Totals(ctx context.Context) (Totals, error)
	BookingsPerService(ctx context.Context) ([]ServiceCount, error)
	BookingsPerStylist(ctx context.Context) ([]StylistCount, error)
}
