package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ka-few/Beauty-parlor-app/internal/domain/analytics"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type AnalyticsGormRepository struct {
	db *gorm.DB
}

func NewAnalyticsGormRepository(db *gorm.DB) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{db: db}
}

func (r *AnalyticsGormRepository) Totals(ctx context.Context) (domain.Totals, error) {
	var t domain.Totals
	db := conn(ctx, r.db)

	if err := db.Model(&models.Customer{}).Count(&t.Users).Error; err != nil {
		return t, err
	}
	if err := db.Model(&models.Booking{}).Count(&t.Bookings).Error; err != nil {
		return t, err
	}
	if err := db.Model(&models.Stylist{}).Count(&t.Stylists).Error; err != nil {
		return t, err
	}

	var revenue struct {
		Total float64
	}
	if err := db.Table("bookings").
		Select("COALESCE(SUM(services.price), 0) AS total").
		Joins("JOIN services ON services.id = bookings.service_id").
		Scan(&revenue).Error; err != nil {
		return t, err
	}
	t.Revenue = revenue.Total

	return t, nil
}

func (r *AnalyticsGormRepository) BookingsPerService(ctx context.Context) ([]domain.ServiceCount, error) {
	var rows []domain.ServiceCount
	if err := conn(ctx, r.db).
		Table("bookings").
		Select("services.title AS service_name, COUNT(bookings.id) AS count").
		Joins("JOIN services ON services.id = bookings.service_id").
		Group("services.id, services.title").
		Order("count DESC").
		Order("services.title ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsGormRepository) BookingsPerStylist(ctx context.Context) ([]domain.StylistCount, error) {
	var rows []domain.StylistCount
	if err := conn(ctx, r.db).
		Table("bookings").
		Select("stylists.name AS stylist_name, COUNT(bookings.id) AS count").
		Joins("JOIN stylists ON stylists.id = bookings.stylist_id").
		Group("stylists.id, stylists.name").
		Order("count DESC").
		Order("stylists.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AnalyticsGormRepository)(nil)
