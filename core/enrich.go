package core

import (
	"context"

	"hrmslite.com/hrms/model"
	"hrmslite.com/hrms/utils"
)

// EnrichAttendance joins records to their employees with a single batched
// lookup. Records whose employee no longer exists keep the raw reference.
func EnrichAttendance(ctx context.Context, employees EmployeeRepository, records []model.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	ids := utils.Distinct(utils.Map(records, func(a model.Attendance) string { return a.EmployeeID }))
	found, err := employees.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	summaries := make(map[string]model.EmployeeSummary, len(found))
	for i := range found {
		summaries[found[i].ID] = found[i].Summary()
	}

	for i := range records {
		if summary, ok := summaries[records[i].EmployeeID]; ok {
			records[i].Employee = &summary
		}
	}
	return nil
}
