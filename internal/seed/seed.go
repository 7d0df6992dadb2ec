// Package seed loads the demo salon: two customers, three services, two
// stylists and a booking for each customer.
package seed

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type Repos struct {
	Customers customer.Repository
	Catalog   catalog.Repository
	Bookings  booking.Repository
	Tx        domain.Transactor
}

// Run inserts the demo rows in one unit of work. Every seeded customer
// gets the same password.
func Run(ctx context.Context, r Repos, password string, now time.Time) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "hash seed password")
	}

	return r.Tx.WithinTx(ctx, func(ctx context.Context) error {
		alice := &models.Customer{Name: "Alice Johnson", Phone: "0765235645", PasswordHash: hash}
		bob := &models.Customer{Name: "Bob Smith", Phone: "0789098790", PasswordHash: hash}
		for _, c := range []*models.Customer{alice, bob} {
			if err := r.Customers.Create(ctx, c); err != nil {
				return errors.Wrapf(err, "seed customer %s", c.Phone)
			}
		}

		haircut := &models.Service{Title: "Haircut", Description: "Basic haircut service", Price: 30}
		coloring := &models.Service{Title: "Hair Coloring", Description: "Professional hair coloring", Price: 50}
		manicure := &models.Service{Title: "Manicure", Description: "Complete manicure service", Price: 25}
		for _, s := range []*models.Service{haircut, coloring, manicure} {
			if err := r.Catalog.CreateService(ctx, s); err != nil {
				return errors.Wrapf(err, "seed service %s", s.Title)
			}
		}

		sophie := &models.Stylist{Name: "Sophie Lee", Bio: "Expert in haircuts and styling"}
		if err := r.Catalog.CreateStylist(ctx, sophie, []models.Service{*haircut, *coloring}); err != nil {
			return errors.Wrap(err, "seed stylist Sophie Lee")
		}
		david := &models.Stylist{Name: "David Kim", Bio: "Specialist in nail care and hair coloring"}
		if err := r.Catalog.CreateStylist(ctx, david, []models.Service{*coloring, *manicure}); err != nil {
			return errors.Wrap(err, "seed stylist David Kim")
		}

		first := now.Add(24*time.Hour + 10*time.Hour)
		second := now.Add(48*time.Hour + 14*time.Hour)
		bookings := []*models.Booking{
			{AppointmentTime: &first, CustomerID: alice.ID, StylistID: sophie.ID, ServiceID: haircut.ID},
			{AppointmentTime: &second, CustomerID: bob.ID, StylistID: david.ID, ServiceID: manicure.ID},
		}
		for _, b := range bookings {
			b.PaymentStatus = string(booking.InitialPaymentStatus())
			if err := r.Bookings.Create(ctx, b); err != nil {
				return errors.Wrap(err, "seed booking")
			}
		}
		return nil
	})
}
