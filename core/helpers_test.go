package core_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/memory"
	"hrmslite.com/hrms/model"
)

// countingEmployees records how the join layer reaches the employees store.
type countingEmployees struct {
	core.EmployeeRepository
	mu           sync.Mutex
	findByIDs    int
	findByID     int
	requestedIDs [][]string
}

func (c *countingEmployees) FindByIDs(ctx context.Context, ids []string) ([]model.Employee, error) {
	c.mu.Lock()
	c.findByIDs++
	c.requestedIDs = append(c.requestedIDs, ids)
	c.mu.Unlock()
	return c.EmployeeRepository.FindByIDs(ctx, ids)
}

func (c *countingEmployees) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	c.mu.Lock()
	c.findByID++
	c.mu.Unlock()
	return c.EmployeeRepository.FindByID(ctx, id)
}

type fixture struct {
	store      *memory.Store
	employees  *core.EmployeeService
	attendance *core.AttendanceService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		store:      store,
		employees:  core.NewEmployeeService(store.Employees(), store.Attendance()),
		attendance: core.NewAttendanceService(store.Employees(), store.Attendance(), time.UTC),
	}
}

func (f *fixture) createEmployee(t *testing.T, code, email string) *model.Employee {
	t.Helper()
	e, err := f.employees.Create(context.Background(), core.NewEmployee{
		EmployeeID: code,
		FullName:   "Employee " + code,
		Email:      email,
		Department: "Engineering",
	})
	require.NoError(t, err)
	return e
}

func (f *fixture) mark(t *testing.T, employeeID, date string, status model.AttendanceStatus) *model.Attendance {
	t.Helper()
	a, err := f.attendance.Create(context.Background(), core.NewAttendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	})
	require.NoError(t, err)
	return a
}

func requireKind(t *testing.T, err error, kind core.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, core.KindOf(err), "error: %v", err)
}
