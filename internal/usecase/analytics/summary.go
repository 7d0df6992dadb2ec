package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/analytics"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
)

// Summary aggregates over the whole store on every call.
type Summary struct {
	repo analytics.Repository
}

func NewSummary(repo analytics.Repository) *Summary {
	return &Summary{repo: repo}
}

func (uc *Summary) Execute(ctx context.Context) (*dto.AnalyticsDTO, error) {
	totals, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	perService, err := uc.repo.BookingsPerService(ctx)
	if err != nil {
		return nil, err
	}
	perStylist, err := uc.repo.BookingsPerStylist(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.AnalyticsDTO{
		Summary: dto.SummaryDTO{
			TotalUsers:    totals.Users,
			TotalBookings: totals.Bookings,
			TotalStylists: totals.Stylists,
			TotalRevenue:  FormatRevenue(totals.Revenue),
		},
		BookingsPerService: make([]dto.ServiceCountDTO, 0, len(perService)),
		BookingsPerStylist: make([]dto.StylistCountDTO, 0, len(perStylist)),
	}
	for _, s := range perService {
		out.BookingsPerService = append(out.BookingsPerService, dto.ServiceCountDTO{ServiceName: s.ServiceName, Count: s.Count})
	}
	for _, s := range perStylist {
		out.BookingsPerStylist = append(out.BookingsPerStylist, dto.StylistCountDTO{StylistName: s.StylistName, Count: s.Count})
	}
	return out, nil
}

// FormatRevenue renders an amount with exactly two decimals.
func FormatRevenue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
