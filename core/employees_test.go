package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
	"hrmslite.com/hrms/utils"
)

func TestCreateEmployee_Normalizes(t *testing.T) {
	f := newFixture(t)

	e, err := f.employees.Create(context.Background(), core.NewEmployee{
		EmployeeID: "  E1 ",
		FullName:   " Jane Doe ",
		Email:      "  JANE@X.COM ",
		Department: " Eng ",
	})
	require.NoError(t, err)

	assert.True(t, model.IsValidID(e.ID))
	assert.Equal(t, "E1", e.EmployeeID)
	assert.Equal(t, "Jane Doe", e.FullName)
	assert.Equal(t, "jane@x.com", e.Email)
	assert.Equal(t, "Eng", e.Department)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	stored, err := f.employees.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", stored.Email)
}

func TestCreateEmployee_Validation(t *testing.T) {
	valid := core.NewEmployee{EmployeeID: "E1", FullName: "Jane", Email: "jane@x.com", Department: "Eng"}

	tests := []struct {
		name   string
		mutate func(*core.NewEmployee)
	}{
		{name: "blank employeeId", mutate: func(e *core.NewEmployee) { e.EmployeeID = "   " }},
		{name: "empty fullName", mutate: func(e *core.NewEmployee) { e.FullName = "" }},
		{name: "blank department", mutate: func(e *core.NewEmployee) { e.Department = "\t" }},
		{name: "missing email", mutate: func(e *core.NewEmployee) { e.Email = "" }},
		{name: "malformed email", mutate: func(e *core.NewEmployee) { e.Email = "not-an-email" }},
		{name: "email without domain", mutate: func(e *core.NewEmployee) { e.Email = "jane@" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			in := valid
			tt.mutate(&in)
			_, err := f.employees.Create(context.Background(), in)
			requireKind(t, err, core.KindValidation)

			n, _ := f.store.Employees().Count(context.Background())
			assert.Zero(t, n, "nothing may be stored")
		})
	}
}

func TestCreateEmployee_Duplicates(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		email string
		want  core.Kind
	}{
		{name: "same employeeId", code: "E1", email: "other@x.com", want: core.KindDuplicateEmployeeID},
		{name: "same email", code: "E2", email: "jane@x.com", want: core.KindDuplicateEmail},
		{name: "same email different case", code: "E2", email: "JANE@X.com", want: core.KindDuplicateEmail},
		{name: "both collide", code: "E1", email: "jane@x.com", want: core.KindDuplicateEmployeeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.createEmployee(t, "E1", "jane@x.com")

			_, err := f.employees.Create(context.Background(), core.NewEmployee{
				EmployeeID: tt.code, FullName: "Someone", Email: tt.email, Department: "Ops",
			})
			requireKind(t, err, tt.want)
		})
	}
}

func TestCreateEmployee_IdentifierReportedFirstAcrossEmployees(t *testing.T) {
	f := newFixture(t)
	f.createEmployee(t, "E1", "first@x.com")
	f.createEmployee(t, "E2", "second@x.com")

	_, err := f.employees.Create(context.Background(), core.NewEmployee{
		EmployeeID: "E1", FullName: "Someone", Email: "second@x.com", Department: "Ops",
	})
	requireKind(t, err, core.KindDuplicateEmployeeID)
}

func TestListEmployees_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.employees.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	f.createEmployee(t, "E1", "e1@x.com")
	f.createEmployee(t, "E2", "e2@x.com")

	list, err := f.employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].CreatedAt.Before(list[1].CreatedAt))
}

func TestGetEmployee_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.employees.Get(context.Background(), "123")
	requireKind(t, err, core.KindInvalidIdentifier)

	_, err = f.employees.Get(context.Background(), model.NewID())
	requireKind(t, err, core.KindNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("partial change keeps other fields", func(t *testing.T) {
		f := newFixture(t)
		e := f.createEmployee(t, "E1", "jane@x.com")

		updated, err := f.employees.Update(ctx, e.ID, core.EmployeeUpdate{Department: utils.Ptr("  Sales ")})
		require.NoError(t, err)
		assert.Equal(t, "Sales", updated.Department)
		assert.Equal(t, "E1", updated.EmployeeID)
		assert.Equal(t, "jane@x.com", updated.Email)
		assert.Equal(t, e.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(e.UpdatedAt))
	})

	t.Run("email is normalized", func(t *testing.T) {
		f := newFixture(t)
		e := f.createEmployee(t, "E1", "jane@x.com")

		updated, err := f.employees.Update(ctx, e.ID, core.EmployeeUpdate{Email: utils.Ptr(" NEW@X.COM")})
		require.NoError(t, err)
		assert.Equal(t, "new@x.com", updated.Email)
	})

	t.Run("own values are not duplicates", func(t *testing.T) {
		f := newFixture(t)
		e := f.createEmployee(t, "E1", "jane@x.com")

		_, err := f.employees.Update(ctx, e.ID, core.EmployeeUpdate{EmployeeID: utils.Ptr("E1"), Email: utils.Ptr("JANE@x.com")})
		require.NoError(t, err)
	})

	t.Run("collisions with other employees", func(t *testing.T) {
		f := newFixture(t)
		f.createEmployee(t, "E1", "first@x.com")
		second := f.createEmployee(t, "E2", "second@x.com")

		_, err := f.employees.Update(ctx, second.ID, core.EmployeeUpdate{EmployeeID: utils.Ptr("E1")})
		requireKind(t, err, core.KindDuplicateEmployeeID)

		_, err = f.employees.Update(ctx, second.ID, core.EmployeeUpdate{Email: utils.Ptr("FIRST@x.com")})
		requireKind(t, err, core.KindDuplicateEmail)

		_, err = f.employees.Update(ctx, second.ID, core.EmployeeUpdate{EmployeeID: utils.Ptr("E1"), Email: utils.Ptr("first@x.com")})
		requireKind(t, err, core.KindDuplicateEmployeeID)
	})

	t.Run("no fields", func(t *testing.T) {
		f := newFixture(t)
		e := f.createEmployee(t, "E1", "jane@x.com")

		_, err := f.employees.Update(ctx, e.ID, core.EmployeeUpdate{})
		requireKind(t, err, core.KindNoFieldsToUpdate)
	})

	t.Run("blank value", func(t *testing.T) {
		f := newFixture(t)
		e := f.createEmployee(t, "E1", "jane@x.com")

		_, err := f.employees.Update(ctx, e.ID, core.EmployeeUpdate{FullName: utils.Ptr("  ")})
		requireKind(t, err, core.KindValidation)
	})

	t.Run("missing and malformed ids", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.employees.Update(ctx, model.NewID(), core.EmployeeUpdate{FullName: utils.Ptr("x")})
		requireKind(t, err, core.KindNotFound)

		_, err = f.employees.Update(ctx, "nope", core.EmployeeUpdate{FullName: utils.Ptr("x")})
		requireKind(t, err, core.KindInvalidIdentifier)
	})
}

func TestDeleteEmployee_CascadesAttendance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gone := f.createEmployee(t, "E1", "gone@x.com")
	kept := f.createEmployee(t, "E2", "kept@x.com")

	f.mark(t, gone.ID, "2024-01-01", model.StatusPresent)
	f.mark(t, gone.ID, "2024-01-02", model.StatusAbsent)
	f.mark(t, kept.ID, "2024-01-01", model.StatusPresent)

	require.NoError(t, f.employees.Delete(ctx, gone.ID))

	_, err := f.employees.Get(ctx, gone.ID)
	requireKind(t, err, core.KindNotFound)

	remaining, err := f.attendance.List(ctx, core.AttendanceQuery{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].EmployeeID)

	byEmployee, err := f.store.Attendance().List(ctx, core.AttendanceFilter{EmployeeID: gone.ID})
	require.NoError(t, err)
	assert.Empty(t, byEmployee)
}

func TestDeleteEmployee_Errors(t *testing.T) {
	f := newFixture(t)

	requireKind(t, f.employees.Delete(context.Background(), "bad"), core.KindInvalidIdentifier)
	requireKind(t, f.employees.Delete(context.Background(), model.NewID()), core.KindNotFound)
}

func TestEmployeeUniquenessHoldsAfterMixedOperations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.createEmployee(t, "A", "a@x.com")
	b := f.createEmployee(t, "B", "b@x.com")

	ops := []func() error{
		func() error {
			_, err := f.employees.Update(ctx, a.ID, core.EmployeeUpdate{Email: utils.Ptr("B@X.COM")})
			return err
		},
		func() error {
			_, err := f.employees.Update(ctx, b.ID, core.EmployeeUpdate{EmployeeID: utils.Ptr("A")})
			return err
		},
		func() error {
			_, err := f.employees.Update(ctx, a.ID, core.EmployeeUpdate{EmployeeID: utils.Ptr("C")})
			return err
		},
		func() error {
			_, err := f.employees.Update(ctx, b.ID, core.EmployeeUpdate{EmployeeID: utils.Ptr("A")})
			return err
		},
		func() error {
			_, err := f.employees.Create(ctx, core.NewEmployee{EmployeeID: "C", FullName: "c", Email: "c@x.com", Department: "d"})
			return err
		},
	}
	for _, op := range ops {
		_ = op()
	}

	list, err := f.employees.List(ctx)
	require.NoError(t, err)
	codes := map[string]bool{}
	emails := map[string]bool{}
	for _, e := range list {
		assert.False(t, codes[e.EmployeeID], "duplicate employeeId %s", e.EmployeeID)
		assert.False(t, emails[e.Email], "duplicate email %s", e.Email)
		codes[e.EmployeeID] = true
		emails[e.Email] = true
	}
}
