// Package postgres persists company snapshots in PostgreSQL through GORM.
//
// The in-memory model stays the source of truth while the process runs. The
// database holds the last saved snapshot of each company, so a restart can
// pick up where the previous run stopped.
//
// Usage:
//
//	db, err := postgres.Connect(ctx, postgres.Config{Host: "localhost", Port: "5432", ...})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//	store := companyrepo.NewGormCompanyStore(db.DB())
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orgchart/internal/adapters/out/postgres/companyrepo"
	"orgchart/internal/pkg/errs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrDatabaseIsRequired is returned when NewDatabase receives a nil handle.
var ErrDatabaseIsRequired = errs.NewValueIsRequiredError("db")

// Config holds connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the key/value connection string understood by lib/pq and pgx.
// An empty SSLMode defaults to "disable".
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode,
	)
}

// Database wraps a GORM handle with schema management.
type Database struct {
	db        *gorm.DB
	closeOnce sync.Once
	closeErr  error
}

// Connect opens a connection described by cfg and pings it.
func Connect(ctx context.Context, cfg Config) (*Database, error) {
	db, err := gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping database: %w", err), sqlDB.Close())
	}

	return NewDatabase(db)
}

// NewDatabase wraps an already opened GORM handle.
func NewDatabase(db *gorm.DB) (*Database, error) {
	if db == nil {
		return nil, ErrDatabaseIsRequired
	}
	return &Database{db: db}, nil
}

// DB returns the underlying GORM handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Migrate creates or updates the snapshot tables.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(companyrepo.Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close releases the connection pool. Calling it more than once is safe.
func (d *Database) Close() error {
	d.closeOnce.Do(func() {
		sqlDB, err := d.db.DB()
		if err != nil {
			d.closeErr = err
			return
		}
		d.closeErr = sqlDB.Close()
	})
	return d.closeErr
}
