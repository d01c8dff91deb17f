package memory

import (
	"context"
	"maps"
	"slices"
	"sort"

	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
	"hrmslite.com/hrms/utils"
)

type AttendanceRepository struct {
	store *Store
}

func (r *AttendanceRepository) List(ctx context.Context, filter core.AttendanceFilter) ([]model.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := utils.Filter(slices.Collect(maps.Values(r.store.attendances)), func(a model.Attendance) bool {
		return matches(a, filter)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matches(a model.Attendance, filter core.AttendanceFilter) bool {
	if filter.EmployeeID != "" && a.EmployeeID != filter.EmployeeID {
		return false
	}
	if filter.From != nil && a.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && a.Date.After(*filter.To) {
		return false
	}
	return true
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*model.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.attendances[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a := *attendance
	a.Employee = nil
	r.store.attendances[a.ID] = a
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, id string, changes core.AttendanceChanges) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.attendances[id]
	if !ok {
		return nil
	}
	if changes.Status != nil {
		a.Status = *changes.Status
	}
	if changes.Date != nil {
		a.Date = *changes.Date
	}
	a.UpdatedAt = changes.UpdatedAt
	r.store.attendances[id] = a
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.attendances[id]; !ok {
		return false, nil
	}
	delete(r.store.attendances, id)
	return true, nil
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for id, a := range r.store.attendances {
		if a.EmployeeID == employeeID {
			delete(r.store.attendances, id)
			n++
		}
	}
	return n, nil
}

func (r *AttendanceRepository) Count(ctx context.Context, status model.AttendanceStatus) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, a := range r.store.attendances {
		if status == "" || a.Status == status {
			n++
		}
	}
	return n, nil
}
