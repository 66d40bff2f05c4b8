package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"employee-service/internal/domains/employee/model"
)

// memoryRepository keeps employees in process. Ids start at 1 and are never reused.
type memoryRepository struct {
	mu     sync.RWMutex
	rows   map[int64]model.Employee
	nextID int64
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		rows:   make(map[int64]model.Employee),
		nextID: 1,
	}
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*model.Employee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *model.Employee
	for _, e := range r.rows {
		if e.Email == email && (match == nil || e.ID < match.ID) {
			found := e
			match = &found
		}
	}
	return match, match != nil, nil
}

func (r *memoryRepository) Save(_ context.Context, e *model.Employee) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *e
	if saved.ID == 0 {
		saved.ID = r.nextID
		r.nextID++
	} else if _, ok := r.rows[saved.ID]; !ok {
		return nil, model.ErrEmployeeNotFound
	}

	r.rows[saved.ID] = saved
	return &saved, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]*model.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		row := e
		employees = append(employees, &row)
	}
	slices.SortFunc(employees, func(a, b *model.Employee) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return employees, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*model.Employee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.rows[id]
	if !ok {
		return nil, false, nil
	}
	return &e, true, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

func (r *memoryRepository) Ping(context.Context) error {
	return nil
}
