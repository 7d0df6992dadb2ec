package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/cache"
	"github.com/Ka-few/Beauty-parlor-app/internal/config"
	dbpkg "github.com/Ka-few/Beauty-parlor-app/internal/db"
	"github.com/Ka-few/Beauty-parlor-app/internal/infra/memory"
	infraRepo "github.com/Ka-few/Beauty-parlor-app/internal/infra/repository"
	"github.com/Ka-few/Beauty-parlor-app/internal/logger"
	"github.com/Ka-few/Beauty-parlor-app/internal/mpesa"
	"github.com/Ka-few/Beauty-parlor-app/internal/routes"
	"github.com/Ka-few/Beauty-parlor-app/internal/seed"
	"github.com/Ka-few/Beauty-parlor-app/internal/storage"
	"github.com/Ka-few/Beauty-parlor-app/internal/timezone"
)

// demoPassword is the login password of the customers seeded into the
// in-memory store.
const demoPassword = "password123"

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := timezone.Location(cfg.Timezone)

	deps := routes.Deps{
		Tokens:   auth.NewManager(cfg.JWTSecret, cfg.JWTTTL),
		Location: loc,
		Logger:   log,
	}

	// ------------------------------
	// Store
	// ------------------------------
	if cfg.UsesMemoryStore() {
		store := memory.NewStore()
		sink := audit.NewMemory()
		deps.Customers = store.Customers()
		deps.Catalog = store.Catalog()
		deps.Bookings = store.Bookings()
		deps.Reviews = store.Reviews()
		deps.Analytics = store.Analytics()
		deps.Tx = store
		deps.Audit = sink
		deps.AuditReader = sink

		err := seed.Run(ctx, seed.Repos{
			Customers: deps.Customers,
			Catalog:   deps.Catalog,
			Bookings:  deps.Bookings,
			Tx:        store,
		}, demoPassword, time.Now())
		if err != nil {
			return err
		}
		log.Warn("using in-memory store; data is lost on exit")
	} else {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		auditLogger := audit.New(db)
		deps.Customers = infraRepo.NewCustomerGormRepository(db)
		deps.Catalog = infraRepo.NewCatalogGormRepository(db)
		deps.Bookings = infraRepo.NewBookingGormRepository(db)
		deps.Reviews = infraRepo.NewReviewGormRepository(db)
		deps.Analytics = infraRepo.NewAnalyticsGormRepository(db)
		deps.Tx = infraRepo.NewGormTransactor(db)
		deps.Audit = auditLogger
		deps.AuditReader = auditLogger
	}

	// ------------------------------
	// Gateway token cache
	// ------------------------------
	var tokenCache cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rc.Close()

		if err := rc.Ping(ctx); err != nil {
			log.Warn("redis unreachable, gateway tokens will not be cached", zap.Error(err))
		} else {
			tokenCache = rc
		}
	}
	deps.Gateway = mpesa.NewClient(cfg.Mpesa, tokenCache, loc)

	// ------------------------------
	// Image storage
	// ------------------------------
	if cfg.S3.Enabled() {
		deps.Images = storage.NewS3(cfg.S3)
	} else {
		log.Info("S3 storage not configured; image uploads disabled")
	}

	// ------------------------------
	// HTTP
	// ------------------------------
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, cfg, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
