package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c *models.Customer) error {
	return translate(conn(ctx, r.db).Create(c).Error)
}

func (r *CustomerGormRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := conn(ctx, r.db).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CustomerGormRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	if err := conn(ctx, r.db).
		Where("phone = ?", phone).
		First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CustomerGormRepository) List(ctx context.Context) ([]models.Customer, error) {
	var list []models.Customer
	if err := conn(ctx, r.db).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
