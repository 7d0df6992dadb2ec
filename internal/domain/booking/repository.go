package booking

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error
	// Reads return bookings with customer, stylist and service loaded.
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)

	ExistsForCustomerAndStylist(ctx context.Context, customerID, stylistID uint) (bool, error)
	SetPaymentIntent(ctx context.Context, bookingID uint, intentID string) error
}
