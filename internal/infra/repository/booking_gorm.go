package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) withRelations(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Preload("Customer").
		Preload("Stylist").
		Preload("Service")
}

func (r *BookingGormRepository) Create(ctx context.Context, b *models.Booking) error {
	return translate(conn(ctx, r.db).
		Omit("Customer", "Stylist", "Service").
		Create(b).Error)
}

func (r *BookingGormRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.withRelations(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.withRelations(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BookingGormRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.withRelations(ctx).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BookingGormRepository) ExistsForCustomerAndStylist(
	ctx context.Context,
	customerID uint,
	stylistID uint,
) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.Booking{}).
		Where("customer_id = ? AND stylist_id = ?", customerID, stylistID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) SetPaymentIntent(ctx context.Context, bookingID uint, intentID string) error {
	res := conn(ctx, r.db).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("payment_intent_id", intentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
