// Package memory keeps employees and attendance in process memory. It mirrors
// the unique indexes of the real stores and is meant for development and tests.
package memory

import (
	"context"
	"sync"

	"hrmslite.com/hrms/model"
)

type Store struct {
	mu          sync.RWMutex
	employees   map[string]model.Employee
	attendances map[string]model.Attendance
}

func NewStore() *Store {
	return &Store{
		employees:   make(map[string]model.Employee),
		attendances: make(map[string]model.Attendance),
	}
}

func (s *Store) Employees() *EmployeeRepository {
	return &EmployeeRepository{store: s}
}

func (s *Store) Attendance() *AttendanceRepository {
	return &AttendanceRepository{store: s}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
