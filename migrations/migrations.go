// Package migrations embeds the SQL schema for every supported storage driver
// and applies it through golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	// postgres:// URLs
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dialect directories inside FS
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// New builds a migrator for databaseURL (postgres://... or sqlite3://...).
// The caller must Close it.
func New(dialect, databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(FS, dialect)
	if err != nil {
		return nil, fmt.Errorf("migration source %s: %w", dialect, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("migration init failed: %w", err)
	}
	m.Log = &migrateLogger{}
	return m, nil
}

// UpURL applies all pending migrations to the database behind databaseURL.
func UpURL(databaseURL string) error {
	m, err := New(DialectFromURL(databaseURL), databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	return up(m)
}

// UpSQLite applies the sqlite migrations to an already opened handle.
// The migrator is not closed because closing it would close db.
func UpSQLite(db *sql.DB) error {
	src, err := iofs.New(FS, SQLite)
	if err != nil {
		return fmt.Errorf("migration source %s: %w", SQLite, err)
	}

	var driver database.Driver
	driver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	m.Log = &migrateLogger{}

	return up(m)
}

// DialectFromURL picks the embedded directory matching a database URL scheme.
func DialectFromURL(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "sqlite") {
		return SQLite
	}
	return Postgres
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up failed: %w", err)
	}
	return nil
}

type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...any) {
	log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *migrateLogger) Verbose() bool { return false }
