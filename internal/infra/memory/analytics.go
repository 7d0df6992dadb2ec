package memory

import (
	"context"
	"sort"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/analytics"
)

type AnalyticsRepository struct {
	s *Store
}

func (r *AnalyticsRepository) Totals(_ context.Context) (analytics.Totals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := analytics.Totals{
		Users:    int64(len(r.s.d.customers)),
		Bookings: int64(len(r.s.d.bookings)),
		Stylists: int64(len(r.s.d.stylists)),
	}
	for _, b := range r.s.d.bookings {
		if sv, ok := r.s.d.services[b.ServiceID]; ok {
			t.Revenue += sv.Price
		}
	}
	return t, nil
}

func (r *AnalyticsRepository) BookingsPerService(_ context.Context) ([]analytics.ServiceCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := map[uint]int64{}
	for _, b := range r.s.d.bookings {
		if _, ok := r.s.d.services[b.ServiceID]; ok {
			counts[b.ServiceID]++
		}
	}

	out := make([]analytics.ServiceCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, analytics.ServiceCount{ServiceName: r.s.d.services[id].Title, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ServiceName < out[j].ServiceName
	})
	return out, nil
}

func (r *AnalyticsRepository) BookingsPerStylist(_ context.Context) ([]analytics.StylistCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := map[uint]int64{}
	for _, b := range r.s.d.bookings {
		if _, ok := r.s.d.stylists[b.StylistID]; ok {
			counts[b.StylistID]++
		}
	}

	out := make([]analytics.StylistCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, analytics.StylistCount{StylistName: r.s.d.stylists[id].Name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].StylistName < out[j].StylistName
	})
	return out, nil
}

var _ analytics.Repository = (*AnalyticsRepository)(nil)
