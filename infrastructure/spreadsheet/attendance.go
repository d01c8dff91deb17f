// Package spreadsheet renders attendance listings as xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"hrmslite.com/hrms/model"
)

const AttendanceSheet = "Attendance"

var attendanceHeader = []any{"Date", "Employee ID", "Full Name", "Department", "Status"}

// WriteAttendance writes records, in order, to a single-sheet workbook.
// Records that were not joined to an employee carry the raw reference in the
// Employee ID column.
func WriteAttendance(w io.Writer, records []model.Attendance) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), AttendanceSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(AttendanceSheet)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}
	if err := sw.SetColWidth(1, 5, 18); err != nil {
		return err
	}
	if err := sw.SetRow("A1", attendanceHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, attendanceRow(r)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func attendanceRow(r model.Attendance) []any {
	employeeID, fullName, department := r.EmployeeID, "", ""
	if r.Employee != nil {
		employeeID, fullName, department = r.Employee.EmployeeID, r.Employee.FullName, r.Employee.Department
	}
	return []any{r.Date.Format(model.DateLayout), employeeID, fullName, department, string(r.Status)}
}
