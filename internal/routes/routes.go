package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/config"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/analytics"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/review"
	"github.com/Ka-few/Beauty-parlor-app/internal/handlers"
	"github.com/Ka-few/Beauty-parlor-app/internal/metrics"
	"github.com/Ka-few/Beauty-parlor-app/internal/middleware"
	"github.com/Ka-few/Beauty-parlor-app/internal/mpesa"
	"github.com/Ka-few/Beauty-parlor-app/internal/storage"
	ucAnalytics "github.com/Ka-few/Beauty-parlor-app/internal/usecase/analytics"
	ucAuditLog "github.com/Ka-few/Beauty-parlor-app/internal/usecase/auditlog"
	ucAuth "github.com/Ka-few/Beauty-parlor-app/internal/usecase/auth"
	ucBooking "github.com/Ka-few/Beauty-parlor-app/internal/usecase/booking"
	ucCatalog "github.com/Ka-few/Beauty-parlor-app/internal/usecase/catalog"
	ucCustomer "github.com/Ka-few/Beauty-parlor-app/internal/usecase/customer"
	ucPayment "github.com/Ka-few/Beauty-parlor-app/internal/usecase/payment"
	ucReview "github.com/Ka-few/Beauty-parlor-app/internal/usecase/review"
	"github.com/Ka-few/Beauty-parlor-app/internal/validators"
)

// Deps are the singletons the routes are built from. Images may be nil
// when no object storage is configured.
type Deps struct {
	Customers customer.Repository
	Catalog   catalog.Repository
	Bookings  booking.Repository
	Reviews   review.Repository
	Analytics analytics.Repository
	Tx        domain.Transactor

	Audit       audit.Sink
	AuditReader audit.Reader

	Tokens   *auth.Manager
	Gateway  ucPayment.Gateway
	Images   storage.ObjectStore
	Location *time.Location
	Logger   *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, d Deps) {
	validators.RegisterBindings()

	log := d.Logger
	if log == nil {
		log = zap.L()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		gin.Recovery(),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(d.Customers, d.Tokens, d.Audit)
	loginUC := ucAuth.NewLogin(d.Customers, d.Tokens)
	meUC := ucAuth.NewCurrentCustomer(d.Customers)

	listServicesUC := ucCatalog.NewListServices(d.Catalog)
	getServiceUC := ucCatalog.NewGetService(d.Catalog)
	createServiceUC := ucCatalog.NewCreateService(d.Catalog)
	updateServiceUC := ucCatalog.NewUpdateService(d.Catalog, d.Tx)
	deleteServiceUC := ucCatalog.NewDeleteService(d.Catalog, d.Tx, d.Audit)
	attachImageUC := ucCatalog.NewAttachServiceImage(d.Catalog, d.Images)

	listStylistsUC := ucCatalog.NewListStylists(d.Catalog)
	getStylistUC := ucCatalog.NewGetStylist(d.Catalog)
	createStylistUC := ucCatalog.NewCreateStylist(d.Catalog, d.Tx)
	updateStylistUC := ucCatalog.NewUpdateStylist(d.Catalog, d.Tx)
	deleteStylistUC := ucCatalog.NewDeleteStylist(d.Catalog, d.Tx, d.Audit)

	createBookingUC := ucBooking.NewCreateBooking(d.Bookings, d.Customers, d.Catalog, d.Tx, d.Audit, d.Location)
	listBookingsUC := ucBooking.NewListBookings(d.Bookings)
	listAllBookingsUC := ucBooking.NewListAllBookings(d.Bookings)

	createReviewUC := ucReview.NewCreateReview(d.Reviews, d.Bookings, d.Catalog, d.Customers, d.Audit)
	listReviewsUC := ucReview.NewListStylistReviews(d.Reviews, d.Catalog)

	initiatePaymentUC := ucPayment.NewInitiatePayment(d.Bookings, d.Gateway, d.Audit)
	callbackUC := ucPayment.NewReceiveCallback(d.Audit)

	summaryUC := ucAnalytics.NewSummary(d.Analytics)
	listCustomersUC := ucCustomer.NewListCustomers(d.Customers)
	listAuditLogsUC := ucAuditLog.NewList(d.AuditReader)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, meUC)
	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		getServiceUC,
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		attachImageUC,
	)
	stylistHandler := handlers.NewStylistHandler(
		listStylistsUC,
		getStylistUC,
		createStylistUC,
		updateStylistUC,
		deleteStylistUC,
		listReviewsUC,
	)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listBookingsUC)
	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	paymentHandler := handlers.NewPaymentHandler(initiatePaymentUC, callbackUC)
	adminHandler := handlers.NewAdminHandler(summaryUC, listCustomersUC, listAllBookingsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(listAuditLogsUC)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.POST("/register", limiter.Handler(), authHandler.Register)
	r.POST("/login", limiter.Handler(), authHandler.Login)

	r.GET("/stylists/:id/reviews", stylistHandler.Reviews)
	r.POST(mpesa.CallbackPath, paymentHandler.Callback)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	requireAdmin := middleware.AdminMiddleware(d.Customers)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Tokens))
	{
		secured.GET("/me", authHandler.Me)

		secured.GET("/services", serviceHandler.List)
		secured.POST("/services", serviceHandler.Create)
		secured.GET("/services/:id", serviceHandler.Get)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)
		secured.PUT("/services/:id/image", serviceHandler.UploadImage)

		secured.GET("/stylists", stylistHandler.List)
		secured.GET("/stylists/:id", stylistHandler.Get)
		secured.POST("/stylists", requireAdmin, stylistHandler.Create)
		secured.PUT("/stylists/:id", requireAdmin, stylistHandler.Update)
		secured.DELETE("/stylists/:id", requireAdmin, stylistHandler.Delete)

		secured.GET("/bookings", bookingHandler.List)
		secured.POST("/bookings", bookingHandler.Create)

		secured.POST("/reviews", reviewHandler.Create)

		secured.POST("/initiate-mpesa-payment", paymentHandler.Initiate)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := secured.Group("/admin")
		admin.Use(requireAdmin)
		{
			admin.GET("/analytics/summary", adminHandler.Summary)
			admin.GET("/users", adminHandler.Users)
			admin.GET("/bookings", adminHandler.Bookings)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
