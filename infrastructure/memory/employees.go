package memory

import (
	"context"
	"fmt"
	"sort"

	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
)

type EmployeeRepository struct {
	store *Store
}

func (r *EmployeeRepository) List(ctx context.Context, limit int) ([]model.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]model.Employee, 0, len(r.store.employees))
	for _, e := range r.store.employees {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]model.Employee, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.store.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) FindConflicts(ctx context.Context, employeeID, email, excludeID string) ([]model.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.conflicts(employeeID, email, excludeID), nil
}

func (r *EmployeeRepository) conflicts(employeeID, email, excludeID string) []model.Employee {
	var out []model.Employee
	for id, e := range r.store.employees {
		if id == excludeID {
			continue
		}
		if (employeeID != "" && e.EmployeeID == employeeID) || (email != "" && e.Email == email) {
			out = append(out, e)
		}
	}
	return out
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.conflicts(employee.EmployeeID, employee.Email, "")) > 0 {
		return fmt.Errorf("insert employee %s: %w", employee.EmployeeID, core.ErrDuplicateKey)
	}
	r.store.employees[employee.ID] = *employee
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, changes core.EmployeeChanges) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[id]
	if !ok {
		return nil
	}
	if changes.EmployeeID != nil {
		e.EmployeeID = *changes.EmployeeID
	}
	if changes.FullName != nil {
		e.FullName = *changes.FullName
	}
	if changes.Email != nil {
		e.Email = *changes.Email
	}
	if changes.Department != nil {
		e.Department = *changes.Department
	}
	e.UpdatedAt = changes.UpdatedAt

	if len(r.conflicts(e.EmployeeID, e.Email, id)) > 0 {
		return fmt.Errorf("update employee %s: %w", id, core.ErrDuplicateKey)
	}
	r.store.employees[id] = e
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[id]; !ok {
		return false, nil
	}
	delete(r.store.employees, id)
	return true, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.employees)), nil
}
