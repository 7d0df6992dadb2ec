package db

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ka-few/Beauty-parlor-app/internal/config"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	zap.S().Info("database connected and migrated")
	return db, nil
}

// Migrate creates or updates the schema. The join table is registered on
// both sides of the stylist/service relation before AutoMigrate runs.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Stylist{}, "Services", &models.StylistService{}); err != nil {
		return errors.Wrap(err, "setup stylist join table")
	}
	if err := db.SetupJoinTable(&models.Service{}, "Stylists", &models.StylistService{}); err != nil {
		return errors.Wrap(err, "setup service join table")
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Stylist{},
		&models.StylistService{},
		&models.Booking{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}
