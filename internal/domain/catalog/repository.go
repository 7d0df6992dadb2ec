package catalog

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type Repository interface {
	// -------- Services --------
	// Reads return services with their stylists loaded.
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	SaveService(ctx context.Context, s *models.Service) error
	// DeleteService removes the service with its bookings and join rows.
	DeleteService(ctx context.Context, id uint) error
	// FindServicesByIDs returns the services that exist, ignoring unknown ids.
	FindServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error)

	// -------- Stylists --------
	// Reads return stylists with their services loaded.
	ListStylists(ctx context.Context) ([]models.Stylist, error)
	GetStylist(ctx context.Context, id uint) (*models.Stylist, error)
	CreateStylist(ctx context.Context, s *models.Stylist, services []models.Service) error
	SaveStylist(ctx context.Context, s *models.Stylist) error
	// ReplaceStylistServices swaps the whole service set; an empty slice clears it.
	ReplaceStylistServices(ctx context.Context, stylistID uint, services []models.Service) error
	// DeleteStylist removes the stylist with its bookings, reviews and join rows.
	DeleteStylist(ctx context.Context, id uint) error

	StylistOffersService(ctx context.Context, stylistID, serviceID uint) (bool, error)
}
