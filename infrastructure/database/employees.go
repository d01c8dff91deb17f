package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func (r *EmployeeRepository) List(ctx context.Context, limit int) ([]model.Employee, error) {
	var employees []model.Employee
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&employees).Error; err != nil {
		return nil, translate("list employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, translate("find employee", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Employee, error) {
	employees := []model.Employee{}
	if len(ids) == 0 {
		return employees, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, translate("find employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) FindConflicts(ctx context.Context, employeeID, email, excludeID string) ([]model.Employee, error) {
	q := r.db.WithContext(ctx)
	switch {
	case employeeID != "" && email != "":
		q = q.Where("(employee_id = ? OR email = ?)", employeeID, email)
	case employeeID != "":
		q = q.Where("employee_id = ?", employeeID)
	case email != "":
		q = q.Where("email = ?", email)
	default:
		return nil, nil
	}
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var employees []model.Employee
	// at most one row per unique index
	if err := q.Limit(2).Find(&employees).Error; err != nil {
		return nil, translate("find conflicting employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return translate("insert employee", r.db.WithContext(ctx).Create(employee).Error)
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, changes core.EmployeeChanges) error {
	updates := map[string]any{"updated_at": changes.UpdatedAt}
	if changes.EmployeeID != nil {
		updates["employee_id"] = *changes.EmployeeID
	}
	if changes.FullName != nil {
		updates["full_name"] = *changes.FullName
	}
	if changes.Email != nil {
		updates["email"] = *changes.Email
	}
	if changes.Department != nil {
		updates["department"] = *changes.Department
	}

	err := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).Updates(updates).Error
	return translate("update employee", err)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Employee{})
	if res.Error != nil {
		return false, translate("delete employee", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Employee{}).Count(&n).Error; err != nil {
		return 0, translate("count employees", err)
	}
	return n, nil
}
