package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-service/internal/domains/employee/model"
)

// postgresRepository implements RepositoryInterface
// Uses pgxpool for PostgreSQL connection management
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new employee repository instance
// Dependency injection pattern - receives pool from container
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

// FindByEmail retrieves the oldest employee with the given email
func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, bool, error) {
	query := `
    SELECT id, first_name, last_name, email
    FROM employees
    WHERE email = $1
    ORDER BY id
    LIMIT 1
  `
	return r.scanOne(ctx, "find employee by email", query, email)
}

// Save inserts or overwrites an employee
func (r *postgresRepository) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID == 0 {
		return r.insert(ctx, e)
	}
	return r.update(ctx, e)
}

func (r *postgresRepository) insert(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	query := `
    INSERT INTO employees (first_name, last_name, email)
    VALUES ($1, $2, $3)
    RETURNING id, first_name, last_name, email
  `
	var saved model.Employee
	err := r.pool.QueryRow(ctx, query, e.FirstName, e.LastName, e.Email).Scan(
		&saved.ID,
		&saved.FirstName,
		&saved.LastName,
		&saved.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}
	return &saved, nil
}

func (r *postgresRepository) update(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	query := `
    UPDATE employees
    SET first_name = $2, last_name = $3, email = $4
    WHERE id = $1
    RETURNING id, first_name, last_name, email
  `
	var saved model.Employee
	err := r.pool.QueryRow(ctx, query, e.ID, e.FirstName, e.LastName, e.Email).Scan(
		&saved.ID,
		&saved.FirstName,
		&saved.LastName,
		&saved.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	return &saved, nil
}

// FindAll retrieves all employees
func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Employee, error) {
	query := `
    SELECT id, first_name, last_name, email
    FROM employees
    ORDER BY id
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, &e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// FindByID retrieves an employee by id
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Employee, bool, error) {
	query := `
    SELECT id, first_name, last_name, email
    FROM employees
    WHERE id = $1
  `
	return r.scanOne(ctx, "find employee by id", query, id)
}

// DeleteByID removes an employee record
func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *postgresRepository) scanOne(ctx context.Context, op, query string, arg any) (*model.Employee, bool, error) {
	var e model.Employee
	err := r.pool.QueryRow(ctx, query, arg).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to %s: %w", op, err)
	}
	return &e, true, nil
}
