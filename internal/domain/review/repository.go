package review

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Review) error
	// ListForStylist returns newest first with the author loaded.
	ListForStylist(ctx context.Context, stylistID uint) ([]models.Review, error)
}
