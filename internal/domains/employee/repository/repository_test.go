package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-service/internal/domains/employee/model"
	"employee-service/internal/domains/employee/repository"
	"employee-service/internal/infrastructure/database"
	"employee-service/migrations"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

func newSQLiteRepo(t *testing.T) repository.RepositoryInterface {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.UpSQLite(db))
	return repository.NewSQLiteRepository(db)
}

// newPostgresRepo runs against TEST_DATABASE_URL and truncates employees first.
func newPostgresRepo(t *testing.T) repository.RepositoryInterface {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, migrations.UpURL(url))

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE employees RESTART IDENTITY`)
	require.NoError(t, err)

	return repository.NewPostgresRepository(pool)
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) repository.RepositoryInterface {
		return repository.NewMemoryRepository()
	})
}

func TestSQLiteRepository(t *testing.T) {
	runRepositoryContract(t, newSQLiteRepo)
}

func TestPostgresRepository(t *testing.T) {
	runRepositoryContract(t, newPostgresRepo)
}

// ─────────────────────────────────────────────────────────────────────────────
// Storage contract shared by every driver
// ─────────────────────────────────────────────────────────────────────────────

func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository.RepositoryInterface) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("save assigns id and round trips", func(t *testing.T) {
		repo := newRepo(t)

		input := &model.Employee{FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"}
		saved, err := repo.Save(ctx, input)
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.Zero(t, input.ID)

		got, found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, saved, got)
	})

	t.Run("find by email", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(ctx, &model.Employee{FirstName: "Farha", LastName: "Begum", Email: "farha@gmail.com"})
		require.NoError(t, err)

		got, found, err := repo.FindByEmail(ctx, "farha@gmail.com")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, saved.ID, got.ID)

		got, found, err = repo.FindByEmail(ctx, "nobody@gmail.com")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("save with id overwrites in place", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(ctx, &model.Employee{FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"})
		require.NoError(t, err)

		updated, err := repo.Save(ctx, &model.Employee{ID: saved.ID, FirstName: "Revathi", LastName: "Vaka", Email: "revtishere@gmail.com"})
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)

		got, found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Revathi", got.FirstName)
		assert.Equal(t, "Vaka", got.LastName)
		assert.Equal(t, "revtishere@gmail.com", got.Email)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("save with unknown id creates nothing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Save(ctx, &model.Employee{ID: 999, FirstName: "Ghost", Email: "ghost@gmail.com"})
		assert.ErrorIs(t, err, model.ErrEmployeeNotFound)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("find by unknown id is absent", func(t *testing.T) {
		repo := newRepo(t)

		got, found, err := repo.FindByID(ctx, 999)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(ctx, &model.Employee{FirstName: "Sameera", LastName: "Reddy", Email: "sameerareddy@gmail.com"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, saved.ID))
		require.NoError(t, repo.DeleteByID(ctx, saved.ID))

		_, found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("find all returns every row ordered by id", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Save(ctx, &model.Employee{FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"})
		require.NoError(t, err)
		second, err := repo.Save(ctx, &model.Employee{FirstName: "Revathi", LastName: "Vaka", Email: "revtishere@gmail.com"})
		require.NoError(t, err)
		third, err := repo.Save(ctx, &model.Employee{FirstName: "Juniper", LastName: "Reddy", Email: "juniper@gmail.com"})
		require.NoError(t, err)
		require.NoError(t, repo.DeleteByID(ctx, second.ID))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, third.ID, all[1].ID)
	})

	t.Run("ping", func(t *testing.T) {
		repo := newRepo(t)
		assert.NoError(t, repo.Ping(ctx))
	})
}
