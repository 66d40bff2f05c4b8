package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"employee-service/internal/domains/employee/model"
	"employee-service/internal/domains/employee/repository"
)

// employeeService implements ServiceInterface
type employeeService struct {
	repo repository.RepositoryInterface
}

// NewEmployeeService creates a new employee service instance
// Dependency injection pattern - receives repository from container
func NewEmployeeService(repo repository.RepositoryInterface) ServiceInterface {
	return &employeeService{
		repo: repo,
	}
}

// Create checks the email is free, then saves. The check and the insert are
// separate round trips: two concurrent creates with one email can both pass.
func (s *employeeService) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	_, exists, err := s.repo.FindByEmail(ctx, e.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		log.Warn().Str("email", e.Email).Msg("rejecting employee with duplicate email")
		return nil, model.NewEmailAlreadyExists(e.Email)
	}

	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	log.Info().Int64("employee_id", saved.ID).Msg("employee created")
	return saved, nil
}

func (s *employeeService) GetAll(ctx context.Context) ([]*model.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		employees = make([]*model.Employee, 0)
	}
	return employees, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*model.Employee, bool, error) {
	e, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return e, found, nil
}

// Update does not re-check email uniqueness
func (s *employeeService) Update(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	return saved, nil
}

func (s *employeeService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}
