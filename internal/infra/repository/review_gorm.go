package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ka-few/Beauty-parlor-app/internal/domain/review"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	return translate(conn(ctx, r.db).
		Omit("Customer", "Stylist").
		Create(rv).Error)
}

func (r *ReviewGormRepository) ListForStylist(ctx context.Context, stylistID uint) ([]models.Review, error) {
	var list []models.Review
	if err := conn(ctx, r.db).
		Preload("Customer").
		Where("stylist_id = ?", stylistID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
