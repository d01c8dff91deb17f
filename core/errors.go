package core

import (
	"errors"
)

// Kind classifies failures so the HTTP layer can translate them without
// inspecting messages.
type Kind string

const (
	KindInvalidIdentifier   Kind = "InvalidIdentifier"
	KindNotFound            Kind = "NotFound"
	KindValidation          Kind = "ValidationError"
	KindInvalidDate         Kind = "InvalidDate"
	KindDuplicateEmployeeID Kind = "DuplicateEmployeeId"
	KindDuplicateEmail      Kind = "DuplicateEmail"
	KindDuplicateAttendance Kind = "DuplicateAttendance"
	KindNoFieldsToUpdate    Kind = "NoFieldsToUpdate"
	KindInternal            Kind = "InternalError"
)

// ErrDuplicateKey is returned (wrapped) by repositories when a unique index
// rejects a write.
var ErrDuplicateKey = errors.New("duplicate key")

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Anything that is not a *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func internalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

const (
	msgInvalidEmployeeID   = "Invalid employee ID format"
	msgInvalidAttendanceID = "Invalid attendance ID format"
	msgEmployeeNotFound    = "Employee not found"
	msgAttendanceNotFound  = "Attendance record not found"
	msgDuplicateEmployeeID = "Employee ID already exists"
	msgDuplicateEmail      = "Email already exists"
	msgDuplicateAttendance = "Attendance already marked for this employee on this date"
	msgNoFieldsToUpdate    = "No fields to update"
	msgInvalidDate         = "Date must be in YYYY-MM-DD format"
	msgInvalidStatus       = "Status must be either Present or Absent"
)
