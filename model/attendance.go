package model

import (
	"encoding/json"
	"time"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

const DateLayout = "2006-01-02"

type Attendance struct {
	ID         string           `gorm:"primaryKey;column:id;size:24" json:"_id"`
	EmployeeID string           `gorm:"column:employee_id;size:24;not null;index:idx_attendances_employee_id;index:idx_attendances_employee_date,priority:1" json:"-"`
	Date       time.Time        `gorm:"column:date;not null;index:idx_attendances_date;index:idx_attendances_employee_date,priority:2" json:"-"`
	Status     AttendanceStatus `gorm:"column:status;size:16;not null;index:idx_attendances_status" json:"status"`
	CreatedAt  time.Time        `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;not null" json:"updatedAt"`

	// Employee is set once the record has been joined to its owner.
	Employee *EmployeeSummary `gorm:"-" json:"-"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// MarshalJSON renders the date as a plain calendar day and replaces the raw
// employee reference with the joined summary when one is present.
func (a Attendance) MarshalJSON() ([]byte, error) {
	type Alias Attendance
	var employee any = a.EmployeeID
	if a.Employee != nil {
		employee = a.Employee
	}
	return json.Marshal(&struct {
		EmployeeID any    `json:"employeeId"`
		Date       string `json:"date"`
		*Alias
	}{
		EmployeeID: employee,
		Date:       a.Date.Format(DateLayout),
		Alias:      (*Alias)(&a),
	})
}
