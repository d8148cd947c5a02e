package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dieselmedia/booking-api/internal/audit"
	"github.com/dieselmedia/booking-api/internal/auth"
	"github.com/dieselmedia/booking-api/internal/config"
	bookingDomain "github.com/dieselmedia/booking-api/internal/domain/booking"
	contactDomain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/handlers"
	"github.com/dieselmedia/booking-api/internal/limiter"
	"github.com/dieselmedia/booking-api/internal/middleware"
	ucAuth "github.com/dieselmedia/booking-api/internal/usecase/auth"
	ucBooking "github.com/dieselmedia/booking-api/internal/usecase/booking"
	ucContact "github.com/dieselmedia/booking-api/internal/usecase/contact"
	"github.com/dieselmedia/booking-api/internal/validators"
)

type Dependencies struct {
	Config      *config.Config
	Log         *zap.Logger
	Bookings    bookingDomain.Repository
	Contacts    contactDomain.Repository
	Credentials auth.CredentialStore
	Tokens      *auth.TokenService
	Limiter     limiter.Limiter
	Audit       *audit.Dispatcher
	Domains     *validators.DomainChecker
}

// RegisterRoutes wires the API onto r. Only the configured proxies may set the
// client address through forwarding headers, since login throttling keys on it.
func RegisterRoutes(r *gin.Engine, deps Dependencies) error {

	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORSMiddleware(deps.Config.CORSOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		deps.Bookings,
		deps.Audit,
		deps.Domains,
	)
	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		deps.Bookings,
		deps.Audit,
	)
	deleteBookingUC := ucBooking.NewDeleteBooking(
		deps.Bookings,
		deps.Audit,
	)

	createMessageUC := ucContact.NewCreateMessage(
		deps.Contacts,
		deps.Audit,
		deps.Domains,
	)
	deleteMessageUC := ucContact.NewDeleteMessage(
		deps.Contacts,
		deps.Audit,
	)

	loginUC := ucAuth.NewLogin(
		deps.Credentials,
		deps.Tokens,
		deps.Limiter,
		deps.Audit,
		deps.Log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		ucBooking.NewListBookings(deps.Bookings),
		ucBooking.NewGetBooking(deps.Bookings),
		updateBookingStatusUC,
		deleteBookingUC,
	)

	contactHandler := handlers.NewContactHandler(
		createMessageUC,
		ucContact.NewListMessages(deps.Contacts),
		ucContact.NewGetMessage(deps.Contacts),
		deleteMessageUC,
	)

	publicHandler := handlers.NewPublicHandler(
		deps.Config.AppName,
		ucBooking.NewGetAvailableTimes(deps.Bookings),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/", publicHandler.Root)
		api.GET("/available-times", publicHandler.AvailableTimes)
		api.POST("/bookings", bookingHandler.Create)
		api.POST("/contact", contactHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(deps.Tokens))
		{
			secured.GET("/auth/verify", authHandler.Verify)

			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			secured.GET("/contact", contactHandler.List)
			secured.GET("/contact/:id", contactHandler.Get)
			secured.DELETE("/contact/:id", contactHandler.Delete)
		}
	}

	return nil
}
