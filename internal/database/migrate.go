package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies the embedded schema migrations for db's dialect
func Migrate(db *DB, logger *zap.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations/"+db.Dialect.MigrationsSubdir())
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	driver, err := db.Dialect.MigrationDriver(db.DB)
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, db.Dialect.Name(), driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully", zap.String("dialect", db.Dialect.Name()))
	}

	return nil
}
