package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"employee-service/internal/config"
	"employee-service/migrations"
	"employee-service/pkg/logger"
)

var errUsage = errors.New("unknown or missing command")

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbCfg, err := config.LoadDatabaseConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("database config")
		}
		dbURL = dbCfg.ConnectionString()
	}

	if err := run(flag.Args(), dbURL); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("migrate")
	}
}

// run executes one migrate command against dbURL. The migrator is always
// closed before returning.
func run(args []string, dbURL string) error {
	if len(args) == 0 {
		return errUsage
	}

	m, err := migrations.New(migrations.DialectFromURL(dbURL), dbURL)
	if err != nil {
		return err
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up failed: %w", err)
		}
		log.Info().Msg("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("down: invalid steps argument %q", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down failed: %w", err)
		}
		log.Info().Int("steps", steps).Msg("migrations: down completed")

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("version failed: %w", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			return errors.New("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("force: invalid version %q", args[1])
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force failed: %w", err)
		}
		log.Info().Int("version", v).Msg("migrations: forced")

	default:
		return errUsage
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Rollback N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (bypass dirty state)

Environment:
  DATABASE_URL   postgres://... or sqlite3://path. Defaults to the DB_* variables.`)
}
