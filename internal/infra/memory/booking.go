package memory

import (
	"context"
	"sort"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type BookingRepository struct {
	s *Store
}

// hydrate attaches customer, stylist and service; caller holds s.mu.
func (r *BookingRepository) hydrate(b models.Booking) models.Booking {
	b.Customer = r.s.d.customers[b.CustomerID]
	b.Stylist = r.s.d.stylists[b.StylistID]
	b.Service = r.s.d.services[b.ServiceID]
	return b
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.customers[b.CustomerID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.d.stylists[b.StylistID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.d.services[b.ServiceID]; !ok {
		return domain.ErrNotFound
	}

	b.ID = r.s.nextID("bookings")
	if b.PaymentStatus == "" {
		b.PaymentStatus = string(booking.InitialPaymentStatus())
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.s.now()
	}

	row := *b
	row.Customer, row.Stylist, row.Service = models.Customer{}, models.Stylist{}, models.Service{}
	put(ctx, r.s.d.bookings, b.ID, row)
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.d.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = r.hydrate(b)
	return &b, nil
}

func (r *BookingRepository) list(keep func(models.Booking) bool) []models.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.Booking{}
	for _, b := range r.s.d.bookings {
		if keep(b) {
			out = append(out, r.hydrate(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *BookingRepository) ListForCustomer(_ context.Context, customerID uint) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *BookingRepository) ListAll(_ context.Context) ([]models.Booking, error) {
	return r.list(func(models.Booking) bool { return true }), nil
}

func (r *BookingRepository) ExistsForCustomerAndStylist(_ context.Context, customerID, stylistID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.d.bookings {
		if b.CustomerID == customerID && b.StylistID == stylistID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) SetPaymentIntent(ctx context.Context, bookingID uint, intentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.d.bookings[bookingID]
	if !ok {
		return domain.ErrNotFound
	}
	b.PaymentIntentID = intentID
	put(ctx, r.s.d.bookings, bookingID, b)
	return nil
}

var _ booking.Repository = (*BookingRepository)(nil)
