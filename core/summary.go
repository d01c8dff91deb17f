package core

import (
	"context"
	"strconv"

	"hrmslite.com/hrms/model"
)

type Summary struct {
	TotalEmployees         int64   `json:"totalEmployees"`
	TotalAttendanceRecords int64   `json:"totalAttendanceRecords"`
	TotalPresent           int64   `json:"totalPresent"`
	TotalAbsent            int64   `json:"totalAbsent"`
	AttendanceRate         float64 `json:"attendanceRate"`
}

func (s *AttendanceService) Summary(ctx context.Context) (*Summary, error) {
	var summary Summary
	var err error

	if summary.TotalEmployees, err = s.employees.Count(ctx); err != nil {
		return nil, internalError("Failed to fetch summary", err)
	}
	if summary.TotalAttendanceRecords, err = s.attendance.Count(ctx, ""); err != nil {
		return nil, internalError("Failed to fetch summary", err)
	}
	if summary.TotalPresent, err = s.attendance.Count(ctx, model.StatusPresent); err != nil {
		return nil, internalError("Failed to fetch summary", err)
	}
	if summary.TotalAbsent, err = s.attendance.Count(ctx, model.StatusAbsent); err != nil {
		return nil, internalError("Failed to fetch summary", err)
	}

	summary.AttendanceRate = AttendanceRate(summary.TotalPresent, summary.TotalAttendanceRecords)
	return &summary, nil
}

// AttendanceRate is present/total as a percentage rounded to one decimal, or 0
// when there are no records. Exact ties round to even (6.25 -> 6.2).
func AttendanceRate(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(present) / float64(total) * 100
	// FormatFloat rounds the exact binary value half to even, without the
	// error a scale-round-unscale would introduce.
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(rate, 'f', 1, 64), 64)
	return rounded
}
