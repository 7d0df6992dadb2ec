package booking

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
)

// ListBookings returns the caller's own bookings only.
type ListBookings struct {
	bookings booking.Repository
}

func NewListBookings(bookings booking.Repository) *ListBookings {
	return &ListBookings{bookings: bookings}
}

func (uc *ListBookings) Execute(ctx context.Context, customerID uint) ([]dto.BookingDTO, error) {
	list, err := uc.bookings.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.Bookings(list), nil
}

type ListAllBookings struct {
	bookings booking.Repository
}

func NewListAllBookings(bookings booking.Repository) *ListAllBookings {
	return &ListAllBookings{bookings: bookings}
}

func (uc *ListAllBookings) Execute(ctx context.Context) ([]dto.AdminBookingDTO, error) {
	list, err := uc.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.AdminBookings(list), nil
}
