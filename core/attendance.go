package core

import (
	"context"
	"time"

	"hrmslite.com/hrms/model"
	"hrmslite.com/hrms/utils"
)

// AttendanceListLimit is the default and maximum size of an attendance listing.
const AttendanceListLimit = 10000

type AttendanceQuery struct {
	// Date restricts the listing to one calendar day. Unparseable values are
	// ignored rather than rejected.
	Date string
	// EmployeeID restricts the listing to one employee when well formed.
	EmployeeID string
	Limit      int
}

type NewAttendance struct {
	EmployeeID string
	Date       string
	Status     model.AttendanceStatus
}

type AttendanceUpdate struct {
	Status *model.AttendanceStatus
	Date   *string
}

type EmployeeAttendance struct {
	Records      []model.Attendance
	TotalPresent int64
}

type AttendanceService struct {
	employees  EmployeeRepository
	attendance AttendanceRepository
	loc        *time.Location
	now        func() time.Time
}

// NewAttendanceService builds the service. Day boundaries are computed in loc;
// a nil loc means the process local time zone.
func NewAttendanceService(employees EmployeeRepository, attendance AttendanceRepository, loc *time.Location) *AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceService{
		employees:  employees,
		attendance: attendance,
		loc:        loc,
		now:        now,
	}
}

func (s *AttendanceService) List(ctx context.Context, q AttendanceQuery) ([]model.Attendance, error) {
	filter := AttendanceFilter{Limit: q.Limit}
	if filter.Limit <= 0 || filter.Limit > AttendanceListLimit {
		filter.Limit = AttendanceListLimit
	}
	if q.Date != "" {
		if day, err := utils.ParseDate(q.Date, s.loc); err == nil {
			from, to := utils.DayRange(day, s.loc)
			filter.From, filter.To = &from, &to
		}
	}
	if model.IsValidID(q.EmployeeID) {
		filter.EmployeeID = q.EmployeeID
	}

	records, err := s.attendance.List(ctx, filter)
	if err != nil {
		return nil, internalError("Failed to fetch attendance records", err)
	}
	records = s.localize(records)
	if err := EnrichAttendance(ctx, s.employees, records); err != nil {
		return nil, internalError("Failed to fetch attendance records", err)
	}
	return records, nil
}

func (s *AttendanceService) Get(ctx context.Context, id string) (*model.Attendance, error) {
	record, err := s.find(ctx, id, "Failed to fetch attendance record")
	if err != nil {
		return nil, err
	}
	records := []model.Attendance{*record}
	if err := EnrichAttendance(ctx, s.employees, records); err != nil {
		return nil, internalError("Failed to fetch attendance record", err)
	}
	return &records[0], nil
}

// ForEmployee returns every record of one employee, newest first, each joined
// to that employee.
func (s *AttendanceService) ForEmployee(ctx context.Context, employeeID string) (*EmployeeAttendance, error) {
	if !model.IsValidID(employeeID) {
		return nil, newError(KindInvalidIdentifier, msgInvalidEmployeeID)
	}
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, internalError("Failed to fetch employee attendance", err)
	}
	if employee == nil {
		return nil, newError(KindNotFound, msgEmployeeNotFound)
	}

	records, err := s.attendance.List(ctx, AttendanceFilter{EmployeeID: employeeID, Limit: AttendanceListLimit})
	if err != nil {
		return nil, internalError("Failed to fetch employee attendance", err)
	}
	records = s.localize(records)

	summary := employee.Summary()
	for i := range records {
		records[i].Employee = &summary
	}

	return &EmployeeAttendance{
		Records:      records,
		TotalPresent: utils.Count(records, func(a model.Attendance) bool { return a.Status == model.StatusPresent }),
	}, nil
}

func (s *AttendanceService) Create(ctx context.Context, in NewAttendance) (*model.Attendance, error) {
	if !in.Status.Valid() {
		return nil, newError(KindValidation, msgInvalidStatus)
	}
	if !model.IsValidID(in.EmployeeID) {
		return nil, newError(KindInvalidIdentifier, msgInvalidEmployeeID)
	}
	employee, err := s.employees.FindByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, internalError("Failed to create attendance record", err)
	}
	if employee == nil {
		return nil, newError(KindNotFound, msgEmployeeNotFound)
	}

	day, err := utils.ParseDate(in.Date, s.loc)
	if err != nil {
		return nil, &Error{Kind: KindInvalidDate, Message: msgInvalidDate, Err: err}
	}

	// Only checked here: the store has no index that can express "one per
	// calendar day", so concurrent creates for the same day can both pass.
	from, to := utils.DayRange(day, s.loc)
	existing, err := s.attendance.List(ctx, AttendanceFilter{EmployeeID: employee.ID, From: &from, To: &to, Limit: 1})
	if err != nil {
		return nil, internalError("Failed to create attendance record", err)
	}
	if len(existing) > 0 {
		return nil, newError(KindDuplicateAttendance, msgDuplicateAttendance)
	}

	ts := s.now()
	summary := employee.Summary()
	record := model.Attendance{
		ID:         model.NewID(),
		EmployeeID: employee.ID,
		Date:       day,
		Status:     in.Status,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if err := s.attendance.Create(ctx, &record); err != nil {
		return nil, internalError("Failed to create attendance record", err)
	}
	record.Employee = &summary
	return &record, nil
}

// Update applies a partial change. A changed date is not re-checked against
// the one-record-per-day rule.
func (s *AttendanceService) Update(ctx context.Context, id string, in AttendanceUpdate) (*model.Attendance, error) {
	if _, err := s.find(ctx, id, "Failed to update attendance record"); err != nil {
		return nil, err
	}

	var changes AttendanceChanges
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, newError(KindValidation, msgInvalidStatus)
		}
		status := *in.Status
		changes.Status = &status
	}
	if in.Date != nil {
		day, err := utils.ParseDate(*in.Date, s.loc)
		if err != nil {
			return nil, &Error{Kind: KindInvalidDate, Message: msgInvalidDate, Err: err}
		}
		changes.Date = &day
	}
	if changes.Empty() {
		return nil, newError(KindNoFieldsToUpdate, msgNoFieldsToUpdate)
	}

	changes.UpdatedAt = s.now()
	if err := s.attendance.Update(ctx, id, changes); err != nil {
		return nil, internalError("Failed to update attendance record", err)
	}
	return s.Get(ctx, id)
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	if !model.IsValidID(id) {
		return newError(KindInvalidIdentifier, msgInvalidAttendanceID)
	}
	deleted, err := s.attendance.Delete(ctx, id)
	if err != nil {
		return internalError("Failed to delete attendance record", err)
	}
	if !deleted {
		return newError(KindNotFound, msgAttendanceNotFound)
	}
	return nil
}

func (s *AttendanceService) find(ctx context.Context, id, failure string) (*model.Attendance, error) {
	if !model.IsValidID(id) {
		return nil, newError(KindInvalidIdentifier, msgInvalidAttendanceID)
	}
	record, err := s.attendance.FindByID(ctx, id)
	if err != nil {
		return nil, internalError(failure, err)
	}
	if record == nil {
		return nil, newError(KindNotFound, msgAttendanceNotFound)
	}
	record.Date = record.Date.In(s.loc)
	return record, nil
}

// localize moves stored dates into the service time zone so they render as the
// calendar day they were recorded for.
func (s *AttendanceService) localize(records []model.Attendance) []model.Attendance {
	if records == nil {
		return []model.Attendance{}
	}
	for i := range records {
		records[i].Date = records[i].Date.In(s.loc)
	}
	return records
}
