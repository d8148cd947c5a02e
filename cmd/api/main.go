package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dieselmedia/booking-api/internal/audit"
	"github.com/dieselmedia/booking-api/internal/auth"
	"github.com/dieselmedia/booking-api/internal/clock"
	"github.com/dieselmedia/booking-api/internal/config"
	dbpkg "github.com/dieselmedia/booking-api/internal/db"
	bookingDomain "github.com/dieselmedia/booking-api/internal/domain/booking"
	contactDomain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/dynamo"
	infraRepo "github.com/dieselmedia/booking-api/internal/infra/repository"
	"github.com/dieselmedia/booking-api/internal/limiter"
	"github.com/dieselmedia/booking-api/internal/logger"
	"github.com/dieselmedia/booking-api/internal/routes"
	"github.com/dieselmedia/booking-api/internal/validators"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bookings, contacts, closeStore, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	credentials, err := newCredentialStore(cfg)
	if err != nil {
		return err
	}

	lim, closeLimiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	dispatcher := audit.NewDispatcher(audit.New(log), log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	err = routes.RegisterRoutes(r, routes.Dependencies{
		Config:      cfg,
		Log:         log,
		Bookings:    bookings,
		Contacts:    contacts,
		Credentials: credentials,
		Tokens:      auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, clock.UTC),
		Limiter:     lim,
		Audit:       dispatcher,
		Domains:     validators.NewDomainChecker(cfg.EmailDomainCheck, nil),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("audit queue not drained", zap.Error(err))
	}

	return nil
}

func openStores(
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
) (bookingDomain.Repository, contactDomain.Repository, func(), error) {

	if cfg.StoreBackend == config.BackendDynamoDB {
		client, err := dynamo.NewClient(cfg.DynamoDB)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, table := range []string{cfg.DynamoDB.BookingsTable, cfg.DynamoDB.ContactTable} {
			if err := dynamo.Ping(ctx, client, table); err != nil {
				return nil, nil, nil, err
			}
		}

		return infraRepo.NewBookingDynamoRepository(client, cfg.DynamoDB.BookingsTable),
			infraRepo.NewContactDynamoRepository(client, cfg.DynamoDB.ContactTable),
			func() {},
			nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	closeDB := func() {
		if err := dbpkg.Close(db); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}

	return infraRepo.NewBookingGormRepository(db),
		infraRepo.NewContactGormRepository(db),
		closeDB,
		nil
}

func newCredentialStore(cfg *config.Config) (auth.CredentialStore, error) {
	if cfg.AdminPasswordHash != "" {
		return auth.NewBcryptCredentialStore(cfg.AdminEmail, cfg.AdminPasswordHash)
	}
	return auth.NewBcryptCredentialStoreFromPassword(cfg.AdminEmail, cfg.AdminPassword)
}

func newLimiter(
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
) (limiter.Limiter, func(), error) {

	if cfg.LoginMaxAttempts == 0 {
		return limiter.Noop{}, func() {}, nil
	}

	if cfg.RedisURL == "" {
		return limiter.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow), func() {}, nil
	}

	client, err := limiter.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Warn("close redis", zap.Error(err))
		}
	}
	return limiter.NewRedisLimiter(client, cfg.LoginMaxAttempts, cfg.LoginWindow), closeClient, nil
}
