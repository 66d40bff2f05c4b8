package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employee-service/internal/domains/employee/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, bool, error) {
	args := m.Called(ctx, email)
	e, _ := args.Get(0).(*model.Employee)
	return e, args.Bool(1), args.Error(2)
}

func (m *mockRepository) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, e)
	saved, _ := args.Get(0).(*model.Employee)
	return saved, args.Error(1)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]*model.Employee, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]*model.Employee)
	return all, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*model.Employee, bool, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*model.Employee)
	return e, args.Bool(1), args.Error(2)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newEmployee() *model.Employee {
	return &model.Employee{FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"}
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewEmployeeService(repo)

	input := newEmployee()
	stored := &model.Employee{ID: 1, FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"}

	repo.On("FindByEmail", ctx, input.Email).Return(nil, false, nil)
	repo.On("Save", ctx, input).Return(stored, nil)

	got, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	repo.AssertExpectations(t)
}

func TestCreate_DuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewEmployeeService(repo)

	existing := &model.Employee{ID: 1, FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"}
	input := &model.Employee{FirstName: "Revathi", LastName: "Vaka", Email: "csranam@gmail.com"}

	repo.On("FindByEmail", ctx, input.Email).Return(existing, true, nil)

	got, err := svc.Create(ctx, input)
	assert.Nil(t, got)
	require.ErrorIs(t, err, model.ErrEmailAlreadyExists)
	assert.Contains(t, err.Error(), "csranam@gmail.com")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreate_LookupFailurePropagates(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewEmployeeService(repo)
	dbErr := errors.New("connection refused")

	repo.On("FindByEmail", ctx, mock.Anything).Return(nil, false, dbErr)

	_, err := svc.Create(ctx, newEmployee())
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns every record", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewEmployeeService(repo)
		all := []*model.Employee{
			{ID: 1, FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"},
			{ID: 2, FirstName: "Revathi", LastName: "Vaka", Email: "revtishere@gmail.com"},
		}
		repo.On("FindAll", ctx).Return(all, nil)

		got, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("empty store gives empty non-nil slice", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewEmployeeService(repo)
		repo.On("FindAll", ctx).Return(nil, nil)

		got, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewEmployeeService(repo)
		stored := &model.Employee{ID: 1, FirstName: "Chandra", LastName: "Reddy", Email: "csranam@gmail.com"}
		repo.On("FindByID", ctx, int64(1)).Return(stored, true, nil)

		got, found, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored, got)
	})

	t.Run("absent is not an error", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewEmployeeService(repo)
		repo.On("FindByID", ctx, int64(999)).Return(nil, false, nil)

		got, found, err := svc.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})
}

func TestUpdate_SkipsUniquenessCheck(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewEmployeeService(repo)

	changed := &model.Employee{ID: 1, FirstName: "Revathi", LastName: "Vaka", Email: "revtishere@gmail.com"}
	repo.On("Save", ctx, changed).Return(changed, nil)

	got, err := svc.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUpdate_VanishedRowIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewEmployeeService(repo)

	changed := &model.Employee{ID: 5, FirstName: "Revathi"}
	repo.On("Save", ctx, changed).Return(nil, model.ErrEmployeeNotFound)

	_, err := svc.Update(ctx, changed)
	assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewEmployeeService(repo)

	repo.On("DeleteByID", ctx, int64(1)).Return(nil).Twice()

	assert.NoError(t, svc.DeleteByID(ctx, 1))
	assert.NoError(t, svc.DeleteByID(ctx, 1))
	repo.AssertExpectations(t)
}
