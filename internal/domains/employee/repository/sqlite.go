package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-service/internal/domains/employee/model"
)

// sqliteRepository implements RepositoryInterface over database/sql + go-sqlite3
type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, bool, error) {
	return r.scanOne(ctx, "find employee by email",
		`SELECT id, first_name, last_name, email FROM employees WHERE email = ? ORDER BY id LIMIT 1`, email)
}

func (r *sqliteRepository) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO employees (first_name, last_name, email) VALUES (?, ?, ?)`,
			e.FirstName, e.LastName, e.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to insert employee: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read employee id: %w", err)
		}
		return &model.Employee{ID: id, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}, nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, email = ? WHERE id = ?`,
		e.FirstName, e.LastName, e.Email, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	if rows == 0 {
		return nil, model.ErrEmployeeNotFound
	}

	saved := *e
	return &saved, nil
}

func (r *sqliteRepository) FindAll(ctx context.Context) ([]*model.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name, email FROM employees ORDER BY id`)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *sqliteRepository) FindByID(ctx context.Context, id int64) (*model.Employee, bool, error) {
	return r.scanOne(ctx, "find employee by id",
		`SELECT id, first_name, last_name, email FROM employees WHERE id = ?`, id)
}

func (r *sqliteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

func (r *sqliteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *sqliteRepository) scanOne(ctx context.Context, op, query string, arg any) (*model.Employee, bool, error) {
	var e model.Employee
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to %s: %w", op, err)
	}
	return &e, true, nil
}
