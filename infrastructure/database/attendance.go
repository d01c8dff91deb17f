package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func (r *AttendanceRepository) List(ctx context.Context, filter core.AttendanceFilter) ([]model.Attendance, error) {
	q := r.db.WithContext(ctx).Model(&model.Attendance{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var records []model.Attendance
	if err := q.Order("date DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, translate("list attendance", err)
	}
	return records, nil
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*model.Attendance, error) {
	var record model.Attendance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, translate("find attendance", err)
	}
	return &record, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return translate("insert attendance", r.db.WithContext(ctx).Create(attendance).Error)
}

func (r *AttendanceRepository) Update(ctx context.Context, id string, changes core.AttendanceChanges) error {
	updates := map[string]any{"updated_at": changes.UpdatedAt}
	if changes.Status != nil {
		updates["status"] = string(*changes.Status)
	}
	if changes.Date != nil {
		updates["date"] = *changes.Date
	}

	err := r.db.WithContext(ctx).Model(&model.Attendance{}).Where("id = ?", id).Updates(updates).Error
	return translate("update attendance", err)
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Attendance{})
	if res.Error != nil {
		return false, translate("delete attendance", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&model.Attendance{})
	if res.Error != nil {
		return 0, translate("delete attendance of employee", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *AttendanceRepository) Count(ctx context.Context, status model.AttendanceStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Attendance{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, translate("count attendance", err)
	}
	return n, nil
}
