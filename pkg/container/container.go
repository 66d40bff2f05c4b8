package container

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"employee-service/internal/config"
	employeeHandler "employee-service/internal/domains/employee/handler"
	employeeRepo "employee-service/internal/domains/employee/repository"
	employeeService "employee-service/internal/domains/employee/service"
	infraCache "employee-service/internal/infrastructure/cache"
	"employee-service/internal/infrastructure/database"
	"employee-service/internal/shared/middleware"
	"employee-service/migrations"
	"employee-service/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container là composition root: handler -> service -> repository,
// each receiving its dependency through its constructor.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB // set when DB_DRIVER=postgres
	SQLite      *sql.DB              // set when DB_DRIVER=sqlite
	Cache       cache.Cache          // set when CACHE_ENABLED=true
	RateLimiter *middleware.LimiterStore

	// ========================================
	// DOMAIN LAYERS
	// ========================================
	EmployeeRepo    employeeRepo.RepositoryInterface
	EmployeeService employeeService.ServiceInterface
	EmployeeHandler *employeeHandler.EmployeeHandler

	cancelJanitor context.CancelFunc
}

// Build wires the dependency graph from an already loaded config.
//
// Thứ tự initialization:
// 1. Storage (+ migrations) and optional cache
// 2. Rate limiter
// 3. Repository -> Service -> Handler
func Build(cfg *config.Config) (*Container, error) {
	log.Info().Str("environment", cfg.App.Environment).Str("driver", cfg.Database.Driver).Msg("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: STORAGE
	// ========================================
	repo, err := c.initStorage()
	if err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: CACHE
	// ========================================
	if cfg.Cache.Enabled {
		repo = c.initCache(repo)
	}

	// ========================================
	// STEP 3: RATE LIMITER
	// ========================================
	if cfg.RateLimit.RPS > 0 {
		c.RateLimiter = middleware.NewLimiterStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		ctx, cancel := context.WithCancel(context.Background())
		c.cancelJanitor = cancel
		c.RateLimiter.StartJanitor(ctx, 2*time.Minute)
	}

	// ========================================
	// STEP 4: DOMAIN
	// ========================================
	c.Wire(repo)

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// Wire builds service and handler on top of repo
func (c *Container) Wire(repo employeeRepo.RepositoryInterface) {
	c.EmployeeRepo = repo
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeRepo)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)
}

func (c *Container) initStorage() (employeeRepo.RepositoryInterface, error) {
	switch c.Config.Database.Driver {
	case config.DriverPostgres:
		return c.initPostgres()
	case config.DriverSQLite:
		return c.initSQLite()
	case config.DriverMemory:
		log.Warn().Msg("⚠️  Using in-memory storage, data is lost on restart")
		return employeeRepo.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", c.Config.Database.Driver)
	}
}

func (c *Container) initPostgres() (employeeRepo.RepositoryInterface, error) {
	log.Info().Msg("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		if err := migrations.UpURL(dbConfig.ConnectionString()); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("✅ Migrations applied")
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	log.Info().Msg("✅ Database connected")

	return employeeRepo.NewPostgresRepository(db.Pool), nil
}

func (c *Container) initSQLite() (employeeRepo.RepositoryInterface, error) {
	log.Info().Str("path", c.Config.Database.SQLitePath).Msg("🗄️  Opening SQLite database...")

	db, err := database.OpenSQLite(context.Background(), c.Config.Database.SQLitePath)
	if err != nil {
		return nil, err
	}
	c.SQLite = db

	if c.Config.Database.AutoMigrate {
		if err := migrations.UpSQLite(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("✅ Migrations applied")
	}

	return employeeRepo.NewSQLiteRepository(db), nil
}

// initCache wraps repo with the redis read-through cache. Redis being down is
// not fatal: the cache decorator falls through to storage on every error.
func (c *Container) initCache(repo employeeRepo.RepositoryInterface) employeeRepo.RepositoryInterface {
	log.Info().Msg("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical)")
	}
	c.Cache = redisCache

	return employeeRepo.NewCachedRepository(repo, redisCache, c.Config.Cache.TTL)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.cancelJanitor != nil {
		c.cancelJanitor()
	}

	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("✅ Database connections closed")
	}

	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close SQLite")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		} else {
			log.Info().Msg("✅ Redis connections closed")
		}
	}
}
