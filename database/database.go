// Package database owns the single configuration-driven connector.
// The driver is chosen from the DATABASE_URL scheme, so switching
// between a managed Postgres and a local SQLite file is a config
// change rather than a code path.
package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projectflow-simple/models"
)

// Models returns every entity the schema carries, in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.BillingService{},
		&models.FileAttachment{},
	}
}

// Open establishes the connection named by dbURL and configures the
// pool, leaving the schema untouched. Supported URLs: postgres://...
// and sqlite://<path> (a bare file path also counts as SQLite).
func Open(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	dialector, driver := dialectorFor(dbURL)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Connect opens the database and migrates the schema. The serving path
// uses this; diagnostics use Open so the check never alters what it
// inspects.
func Connect(dbURL string) (*gorm.DB, error) {
	db, err := Open(dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	_, driver := dialectorFor(dbURL)
	log.Printf("Connected to %s database", driver)
	return db, nil
}

// dialectorFor picks the GORM dialector from the URL scheme.
func dialectorFor(dbURL string) (gorm.Dialector, string) {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return postgres.Open(dbURL), "postgres"
	case strings.HasPrefix(dbURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://")), "sqlite"
	default:
		return sqlite.Open(dbURL), "sqlite"
	}
}
