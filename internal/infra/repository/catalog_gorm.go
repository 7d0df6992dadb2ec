package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func orderStylists(db *gorm.DB) *gorm.DB {
	return db.Order("stylists.id ASC")
}

func orderServices(db *gorm.DB) *gorm.DB {
	return db.Order("services.id ASC")
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var list []models.Service
	if err := conn(ctx, r.db).
		Preload("Stylists", orderStylists).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := conn(ctx, r.db).
		Preload("Stylists", orderStylists).
		First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return translate(conn(ctx, r.db).Omit(clause.Associations).Create(s).Error)
}

func (r *CatalogGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	return translate(conn(ctx, r.db).Omit(clause.Associations).Save(s).Error)
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&models.StylistService{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (r *CatalogGormRepository) FindServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var list []models.Service
	if err := conn(ctx, r.db).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

func (r *CatalogGormRepository) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	var list []models.Stylist
	if err := conn(ctx, r.db).
		Preload("Services", orderServices).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CatalogGormRepository) GetStylist(ctx context.Context, id uint) (*models.Stylist, error) {
	var s models.Stylist
	if err := conn(ctx, r.db).
		Preload("Services", orderServices).
		First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateStylist(
	ctx context.Context,
	s *models.Stylist,
	services []models.Service,
) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(s).Error; err != nil {
			return translate(err)
		}
		if err := insertLinks(tx, s.ID, services); err != nil {
			return err
		}
		s.Services = services
		return nil
	})
}

func (r *CatalogGormRepository) SaveStylist(ctx context.Context, s *models.Stylist) error {
	return translate(conn(ctx, r.db).Omit(clause.Associations).Save(s).Error)
}

func (r *CatalogGormRepository) ReplaceStylistServices(
	ctx context.Context,
	stylistID uint,
	services []models.Service,
) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", stylistID).Delete(&models.StylistService{}).Error; err != nil {
			return err
		}
		return insertLinks(tx, stylistID, services)
	})
}

func (r *CatalogGormRepository) DeleteStylist(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stylist_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stylist_id = ?", id).Delete(&models.StylistService{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Stylist{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (r *CatalogGormRepository) StylistOffersService(
	ctx context.Context,
	stylistID uint,
	serviceID uint,
) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.StylistService{}).
		Where("stylist_id = ? AND service_id = ?", stylistID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func insertLinks(tx *gorm.DB, stylistID uint, services []models.Service) error {
	if len(services) == 0 {
		return nil
	}
	links := make([]models.StylistService, 0, len(services))
	for _, s := range services {
		links = append(links, models.StylistService{StylistID: stylistID, ServiceID: s.ID})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
