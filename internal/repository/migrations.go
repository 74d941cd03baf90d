package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations brings the schema up to date. It is safe to call on every start.
func RunMigrations(db *sql.DB, driverName string) error {
	driver, err := migrationDriver(db, driverName)
	if err != nil {
		return fmt.Errorf("could not create database driver: %w", err)
	}

	d, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		driverName, driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("could not run up migrations: %w", err)
	}

	return nil
}

func migrationDriver(db *sql.DB, driverName string) (database.Driver, error) {
	switch driverName {
	case DriverPostgres:
		return postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		return sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driverName)
	}
}
