package core

import (
	"context"
	"time"

	"hrmslite.com/hrms/model"
)

// EmployeeRepository is the employees collection. Lookups that find nothing
// return a nil record and a nil error.
type EmployeeRepository interface {
	// List returns employees newest first.
	List(ctx context.Context, limit int) ([]model.Employee, error)
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Employee, error)
	// FindConflicts returns employees whose employeeId or email equals the
	// given non-empty values, ignoring the employee with excludeID.
	FindConflicts(ctx context.Context, employeeID, email, excludeID string) ([]model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, id string, changes EmployeeChanges) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type AttendanceRepository interface {
	// List returns matching records ordered by date descending.
	List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error)
	FindByID(ctx context.Context, id string) (*model.Attendance, error)
	Create(ctx context.Context, attendance *model.Attendance) error
	Update(ctx context.Context, id string, changes AttendanceChanges) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
	// Count counts records with the given status, or all records for "".
	Count(ctx context.Context, status model.AttendanceStatus) (int64, error)
}

// AttendanceFilter narrows an attendance listing. Zero values mean no
// restriction.
type AttendanceFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Limit      int
}

// EmployeeChanges is a change-set: only non-nil fields are written.
type EmployeeChanges struct {
	EmployeeID *string
	FullName   *string
	Email      *string
	Department *string
	UpdatedAt  time.Time
}

func (c EmployeeChanges) Empty() bool {
	return c.EmployeeID == nil && c.FullName == nil && c.Email == nil && c.Department == nil
}

type AttendanceChanges struct {
	Status    *model.AttendanceStatus
	Date      *time.Time
	UpdatedAt time.Time
}

func (c AttendanceChanges) Empty() bool {
	return c.Status == nil && c.Date == nil
}
