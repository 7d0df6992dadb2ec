package memory

import (
	"context"
	"sort"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/review"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type ReviewRepository struct {
	s *Store
}

func (r *ReviewRepository) Create(ctx context.Context, rv *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.customers[rv.CustomerID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.d.stylists[rv.StylistID]; !ok {
		return domain.ErrNotFound
	}

	rv.ID = r.s.nextID("reviews")
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = r.s.now()
	}
	row := *rv
	row.Customer, row.Stylist = models.Customer{}, models.Stylist{}
	put(ctx, r.s.d.reviews, rv.ID, row)
	return nil
}

func (r *ReviewRepository) ListForStylist(_ context.Context, stylistID uint) ([]models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.Review{}
	for _, rv := range r.s.d.reviews {
		if rv.StylistID != stylistID {
			continue
		}
		rv.Customer = r.s.d.customers[rv.CustomerID]
		out = append(out, rv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

var _ review.Repository = (*ReviewRepository)(nil)
