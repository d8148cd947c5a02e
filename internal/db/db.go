package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dieselmedia/booking-api/internal/config"
	"github.com/dieselmedia/booking-api/internal/models"
)

// NewDB opens the relational store selected by cfg and migrates it when enabled.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	var (
		dialector gorm.Dialector
		embedded  bool
	)

	switch cfg.StoreBackend {
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.DBUrl)
		embedded = true
	case config.BackendPostgres:
		dialector = postgres.Open(cfg.DBUrl)
	default:
		return nil, fmt.Errorf("store backend %q is not relational", cfg.StoreBackend)
	}

	db, err := Open(dialector, embedded)
	if err != nil {
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Open connects and sizes the pool. SQLite allows a single writer, so embedded
// databases get exactly one connection.
func Open(dialector gorm.Dialector, embedded bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if embedded {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Booking{},
		&models.ContactMessage{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
