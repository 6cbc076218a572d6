package database

import (
	"context"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/transcripts/internal/config"
	"github.com/mrlokans/transcripts/internal/entities"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

type Database struct {
	DB     *gorm.DB
	Driver config.Driver
}

// Open connects to the configured SQLite or PostgreSQL database. The schema
// is not touched; call Migrate for that.
func Open(cfg config.Database, logLevel logger.LogLevel) (*Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db, Driver: cfg.Driver}, nil
}

// NewDatabase opens a SQLite database at dbPath and migrates it.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := Open(config.Database{Driver: config.DriverSQLite, Path: dbPath}, logger.Warn)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func newDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLiteDSN()), nil
	case config.DriverPostgres:
		// lib/pq is the wire driver; gorm only supplies the dialect.
		return postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.PostgresDSN(),
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}
}

// Migrate creates or updates the seasons, episodes, speakers and lines tables.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(entities.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Tables lists the tables present in the database.
func (d *Database) Tables() ([]string, error) {
	tables, err := d.DB.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
