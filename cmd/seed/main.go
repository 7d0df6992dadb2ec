// Command seed resets the database and loads the demo salon.
package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ka-few/Beauty-parlor-app/internal/config"
	dbpkg "github.com/Ka-few/Beauty-parlor-app/internal/db"
	infraRepo "github.com/Ka-few/Beauty-parlor-app/internal/infra/repository"
	"github.com/Ka-few/Beauty-parlor-app/internal/logger"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
	"github.com/Ka-few/Beauty-parlor-app/internal/seed"
)

func main() {
	password := flag.String("password", "password123", "password given to every seeded customer")
	flag.Parse()

	cfg := config.Load()
	log, err := logger.Init(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.UsesMemoryStore() {
		log.Fatal("seed needs a database; DATABASE_URL points at the in-memory store")
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	if err := reset(db); err != nil {
		log.Fatal("clear tables", zap.Error(err))
	}

	err = seed.Run(context.Background(), seed.Repos{
		Customers: infraRepo.NewCustomerGormRepository(db),
		Catalog:   infraRepo.NewCatalogGormRepository(db),
		Bookings:  infraRepo.NewBookingGormRepository(db),
		Tx:        infraRepo.NewGormTransactor(db),
	}, *password, time.Now())
	if err != nil {
		log.Fatal("seed", zap.Error(err))
	}

	log.Info("database seeded")
}

// reset empties every table, children first.
func reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []any{
			&models.Review{},
			&models.Booking{},
			&models.StylistService{},
			&models.Stylist{},
			&models.Service{},
			&models.Customer{},
			&models.AuditLog{},
		} {
			if err := all.Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
