package memory

import (
	"context"
	"sort"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CustomerRepository struct {
	s *Store
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.customers {
		if existing.Phone == c.Phone {
			return domain.ErrDuplicate
		}
	}

	c.ID = r.s.nextID("customers")
	now := r.s.now()
	c.CreatedAt = now
	c.UpdatedAt = now
	row := *c
	row.Bookings, row.Reviews = nil, nil
	put(ctx, r.s.d.customers, c.ID, row)
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.d.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CustomerRepository) GetByPhone(_ context.Context, phone string) (*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.d.customers {
		if c.Phone == phone {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CustomerRepository) List(_ context.Context) ([]models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]models.Customer, 0, len(r.s.d.customers))
	for _, c := range r.s.d.customers {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
