package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"hrmslite.com/hrms/model"
	"hrmslite.com/hrms/utils"
)

// EmployeeListLimit caps listEmployees; there is no pagination.
const EmployeeListLimit = 1000

var validate = validator.New()

type NewEmployee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// EmployeeUpdate carries the fields supplied by the caller; nil means "leave
// unchanged".
type EmployeeUpdate struct {
	EmployeeID *string
	FullName   *string
	Email      *string
	Department *string
}

type EmployeeService struct {
	employees  EmployeeRepository
	attendance AttendanceRepository
	now        func() time.Time
}

func NewEmployeeService(employees EmployeeRepository, attendance AttendanceRepository) *EmployeeService {
	return &EmployeeService{
		employees:  employees,
		attendance: attendance,
		now:        now,
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employees.List(ctx, EmployeeListLimit)
	if err != nil {
		return nil, internalError("Failed to fetch employees", err)
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	if !model.IsValidID(id) {
		return nil, newError(KindInvalidIdentifier, msgInvalidEmployeeID)
	}
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch employee", err)
	}
	if employee == nil {
		return nil, newError(KindNotFound, msgEmployeeNotFound)
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, in NewEmployee) (*model.Employee, error) {
	employee := model.Employee{
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      normalizeEmail(in.Email),
		Department: strings.TrimSpace(in.Department),
	}

	for _, f := range []struct{ name, value string }{
		{"employeeId", employee.EmployeeID},
		{"fullName", employee.FullName},
		{"email", employee.Email},
		{"department", employee.Department},
	} {
		if err := requireField(f.name, f.value); err != nil {
			return nil, err
		}
	}
	if err := validateEmail(employee.Email); err != nil {
		return nil, err
	}

	conflicts, err := s.employees.FindConflicts(ctx, employee.EmployeeID, employee.Email, "")
	if err != nil {
		return nil, internalError("Failed to create employee", err)
	}
	if err := duplicateEmployeeError(conflicts, employee.EmployeeID, employee.Email); err != nil {
		return nil, err
	}

	ts := s.now()
	employee.ID = model.NewID()
	employee.CreatedAt = ts
	employee.UpdatedAt = ts

	if err := s.employees.Create(ctx, &employee); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, s.classifyDuplicate(ctx, employee.EmployeeID, employee.Email, "", err)
		}
		return nil, internalError("Failed to create employee", err)
	}
	return &employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in EmployeeUpdate) (*model.Employee, error) {
	if !model.IsValidID(id) {
		return nil, newError(KindInvalidIdentifier, msgInvalidEmployeeID)
	}
	existing, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to update employee", err)
	}
	if existing == nil {
		return nil, newError(KindNotFound, msgEmployeeNotFound)
	}

	changes, err := employeeChanges(in)
	if err != nil {
		return nil, err
	}
	if changes.Empty() {
		return nil, newError(KindNoFieldsToUpdate, msgNoFieldsToUpdate)
	}

	employeeID, email := utils.Deref(changes.EmployeeID), utils.Deref(changes.Email)
	if employeeID != "" || email != "" {
		conflicts, err := s.employees.FindConflicts(ctx, employeeID, email, id)
		if err != nil {
			return nil, internalError("Failed to update employee", err)
		}
		if err := duplicateEmployeeError(conflicts, employeeID, email); err != nil {
			return nil, err
		}
	}

	changes.UpdatedAt = s.now()
	if err := s.employees.Update(ctx, id, changes); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, s.classifyDuplicate(ctx, employeeID, email, id, err)
		}
		return nil, internalError("Failed to update employee", err)
	}

	updated, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to update employee", err)
	}
	if updated == nil {
		return nil, newError(KindNotFound, msgEmployeeNotFound)
	}
	return updated, nil
}

// Delete removes the employee and then every attendance record that refers to
// it. The two deletes are not atomic: when the cascade fails the employee stays
// deleted and the error is reported as internal.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if !model.IsValidID(id) {
		return newError(KindInvalidIdentifier, msgInvalidEmployeeID)
	}
	deleted, err := s.employees.Delete(ctx, id)
	if err != nil {
		return internalError("Failed to delete employee", err)
	}
	if !deleted {
		return newError(KindNotFound, msgEmployeeNotFound)
	}
	if _, err := s.attendance.DeleteByEmployee(ctx, id); err != nil {
		return internalError("Failed to delete employee", fmt.Errorf("delete attendance of employee %s: %w", id, err))
	}
	return nil
}

// classifyDuplicate turns a unique index rejection into the same error the
// pre-insert check would have produced. It covers the window between the check
// and the write.
func (s *EmployeeService) classifyDuplicate(ctx context.Context, employeeID, email, excludeID string, cause error) error {
	conflicts, err := s.employees.FindConflicts(ctx, employeeID, email, excludeID)
	if err == nil {
		if dup := duplicateEmployeeError(conflicts, employeeID, email); dup != nil {
			return dup
		}
	}
	return &Error{Kind: KindDuplicateEmployeeID, Message: msgDuplicateEmployeeID, Err: cause}
}

// duplicateEmployeeError reports an employeeId collision ahead of an email
// collision.
func duplicateEmployeeError(conflicts []model.Employee, employeeID, email string) error {
	if employeeID != "" && utils.Find(conflicts, func(e model.Employee) bool { return e.EmployeeID == employeeID }) != nil {
		return newError(KindDuplicateEmployeeID, msgDuplicateEmployeeID)
	}
	if email != "" && utils.Find(conflicts, func(e model.Employee) bool { return e.Email == email }) != nil {
		return newError(KindDuplicateEmail, msgDuplicateEmail)
	}
	return nil
}

func employeeChanges(in EmployeeUpdate) (EmployeeChanges, error) {
	var changes EmployeeChanges
	if in.EmployeeID != nil {
		v := strings.TrimSpace(*in.EmployeeID)
		if err := requireField("employeeId", v); err != nil {
			return changes, err
		}
		changes.EmployeeID = &v
	}
	if in.FullName != nil {
		v := strings.TrimSpace(*in.FullName)
		if err := requireField("fullName", v); err != nil {
			return changes, err
		}
		changes.FullName = &v
	}
	if in.Email != nil {
		v := normalizeEmail(*in.Email)
		if err := requireField("email", v); err != nil {
			return changes, err
		}
		if err := validateEmail(v); err != nil {
			return changes, err
		}
		changes.Email = &v
	}
	if in.Department != nil {
		v := strings.TrimSpace(*in.Department)
		if err := requireField("department", v); err != nil {
			return changes, err
		}
		changes.Department = &v
	}
	return changes, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func requireField(name, value string) error {
	if value == "" {
		return newError(KindValidation, fmt.Sprintf("Field '%s' is required", name))
	}
	return nil
}

func validateEmail(email string) error {
	if err := validate.Var(email, "email"); err != nil {
		return newError(KindValidation, "Field 'email' must be a valid email")
	}
	return nil
}
