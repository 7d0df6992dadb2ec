package customer

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}
