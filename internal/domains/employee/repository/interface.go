package repository

import (
	"context"

	"employee-service/internal/domains/employee/model"
)

// RepositoryInterface defines all data access operations for Employee domain.
// Lookups return found=false rather than an error when no row matches.
type RepositoryInterface interface {
	// FindByEmail returns the first employee stored with email
	FindByEmail(ctx context.Context, email string) (*model.Employee, bool, error)

	// Save inserts e when e.ID is zero (assigning the id) and otherwise
	// overwrites the row with that id. Overwriting a missing row returns
	// model.ErrEmployeeNotFound.
	Save(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// FindAll returns every stored employee ordered by id
	FindAll(ctx context.Context) ([]*model.Employee, error)

	// FindByID retrieves an employee by id
	FindByID(ctx context.Context, id int64) (*model.Employee, bool, error)

	// DeleteByID removes the row if present; deleting a missing id is not an error
	DeleteByID(ctx context.Context, id int64) error

	// Ping checks the underlying store is reachable
	Ping(ctx context.Context) error
}
