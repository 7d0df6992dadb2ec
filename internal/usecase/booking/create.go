package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/metrics"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	StylistID  uint
	ServiceID  uint
	// AppointmentTime is optional; blank means no time was chosen.
	AppointmentTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	bookings  booking.Repository
	customers customer.Repository
	catalog   catalog.Repository
	tx        domain.Transactor
	audit     audit.Sink
	loc       *time.Location
}

func NewCreateBooking(
	bookings booking.Repository,
	customers customer.Repository,
	catalog catalog.Repository,
	tx domain.Transactor,
	audit audit.Sink,
	loc *time.Location,
) *CreateBooking {
	if loc == nil {
		loc = time.UTC
	}
	return &CreateBooking{
		bookings:  bookings,
		customers: customers,
		catalog:   catalog,
		tx:        tx,
		audit:     audit,
		loc:       loc,
	}
}

func (uc *CreateBooking) Execute(ctx context.Context, in CreateBookingInput) (*dto.BookingDTO, error) {
	if in.CustomerID == 0 || in.StylistID == 0 || in.ServiceID == 0 {
		return nil, httperr.Validation("Invalid booking data")
	}

	var created *models.Booking

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.customers.GetByID(ctx, in.CustomerID); err != nil {
			return invalidData(err)
		}
		stylist, err := uc.catalog.GetStylist(ctx, in.StylistID)
		if err != nil {
			return invalidData(err)
		}
		service, err := uc.catalog.GetService(ctx, in.ServiceID)
		if err != nil {
			return invalidData(err)
		}

		offers, err := uc.catalog.StylistOffersService(ctx, stylist.ID, service.ID)
		if err != nil {
			return err
		}
		if !offers {
			return httperr.Validation(fmt.Sprintf("Stylist '%s' does not offer '%s'", stylist.Name, service.Title))
		}

		b := &models.Booking{
			CustomerID:    in.CustomerID,
			StylistID:     stylist.ID,
			ServiceID:     service.ID,
			PaymentStatus: string(booking.InitialPaymentStatus()),
		}
		if strings.TrimSpace(in.AppointmentTime) != "" {
			at, err := booking.ParseAppointmentTime(in.AppointmentTime, uc.loc)
			if err != nil {
				return err
			}
			b.AppointmentTime = &at
		}

		if err := uc.bookings.Create(ctx, b); err != nil {
			return err
		}

		created, err = uc.bookings.GetByID(ctx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	uc.audit.Dispatch(ctx, audit.Event{
		CustomerID: &in.CustomerID,
		Action:     audit.ActionBookingCreated,
		Entity:     "booking",
		EntityID:   &created.ID,
		Metadata: map[string]any{
			"stylist_id": created.StylistID,
			"service_id": created.ServiceID,
		},
	})

	out := dto.Booking(created)
	return &out, nil
}

func invalidData(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.Validation("Invalid booking data")
	}
	return err
}
