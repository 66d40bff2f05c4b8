package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-service/internal/config"
	"employee-service/internal/domains/employee/model"
)

func TestBuild_Memory(t *testing.T) {
	c, err := Build(&config.Config{
		Database:  config.DatabaseConfig{Driver: config.DriverMemory},
		RateLimit: config.RateLimitConfig{RPS: 10, Burst: 10},
	})
	require.NoError(t, err)
	defer c.Cleanup()

	assert.NotNil(t, c.EmployeeRepo)
	assert.NotNil(t, c.EmployeeService)
	assert.NotNil(t, c.EmployeeHandler)
	assert.NotNil(t, c.RateLimiter)
	assert.Nil(t, c.Cache)
}

func TestBuild_SQLiteRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.db")
	c, err := Build(&config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: path, AutoMigrate: true},
	})
	require.NoError(t, err)
	defer c.Cleanup()

	ctx := context.Background()
	saved, err := c.EmployeeService.Create(ctx, &model.Employee{FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"})
	require.NoError(t, err)

	got, found, err := c.EmployeeService.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, saved, got)
	assert.Nil(t, c.RateLimiter)
}

func TestBuild_UnknownDriver(t *testing.T) {
	_, err := Build(&config.Config{Database: config.DatabaseConfig{Driver: "oracle"}})
	assert.Error(t, err)
}
