package model

import "time"

type Employee struct {
	ID         string    `gorm:"primaryKey;column:id;size:24" json:"_id"`
	EmployeeID string    `gorm:"column:employee_id;size:64;not null;uniqueIndex:idx_employees_employee_id" json:"employeeId"`
	FullName   string    `gorm:"column:full_name;size:255;not null" json:"fullName"`
	Email      string    `gorm:"column:email;size:255;not null;uniqueIndex:idx_employees_email" json:"email"`
	Department string    `gorm:"column:department;size:128;not null;index:idx_employees_department" json:"department"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;index:idx_employees_created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeSummary is the compact form of an employee embedded in attendance
// responses.
type EmployeeSummary struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
}

func (e *Employee) Summary() EmployeeSummary {
	return EmployeeSummary{
		ID:         e.ID,
		FullName:   e.FullName,
		EmployeeID: e.EmployeeID,
		Department: e.Department,
	}
}
