package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationStatus is the schema version before and after Migrate.
type MigrationStatus struct {
	Before uint
	After  uint
	Dirty  bool
}

// Migrate applies every pending migration. A schema that is already current
// is not an error.
func Migrate(db *DB, log logrus.FieldLogger) (*MigrationStatus, error) {
	m, err := newMigrator(db)
	if err != nil {
		return nil, err
	}

	status := &MigrationStatus{}
	status.Before, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("failed to apply migrations: %w", err)
	}

	status.After, status.Dirty, err = m.Version()
	if err != nil {
		return status, fmt.Errorf("failed to read schema version: %w", err)
	}

	log.WithFields(logrus.Fields{
		"preMigrationVersion":  status.Before,
		"postMigrationVersion": status.After,
	}).Info("Migration status")
	return status, nil
}

func newMigrator(db *DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}
