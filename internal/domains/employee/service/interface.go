package service

import (
	"context"

	"employee-service/internal/domains/employee/model"
)

// ServiceInterface defines all business logic operations for Employee domain
type ServiceInterface interface {
	// Create persists a new employee, rejecting an email that is already stored
	Create(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// GetAll returns every stored employee; never nil
	GetAll(ctx context.Context) ([]*model.Employee, error)

	// GetByID returns found=false when no employee has this id
	GetByID(ctx context.Context, id int64) (*model.Employee, bool, error)

	// Update persists e as-is. The caller merges new values into an existing record.
	Update(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// DeleteByID removes the employee; a missing id is not an error
	DeleteByID(ctx context.Context, id int64) error
}
