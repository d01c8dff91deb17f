package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"hrmslite.com/hrms/model"
)

type employeeDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	EmployeeID string             `bson:"employeeId"`
	FullName   string             `bson:"fullName"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func newEmployeeDocument(e *model.Employee) (employeeDocument, error) {
	id, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return employeeDocument{}, err
	}
	return employeeDocument{
		ID:         id,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}, nil
}

func (d employeeDocument) model() model.Employee {
	return model.Employee{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: d.Department,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type attendanceDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	EmployeeID primitive.ObjectID `bson:"employeeId"`
	Date       time.Time          `bson:"date"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func newAttendanceDocument(a *model.Attendance) (attendanceDocument, error) {
	id, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return attendanceDocument{}, err
	}
	employeeID, err := primitive.ObjectIDFromHex(a.EmployeeID)
	if err != nil {
		return attendanceDocument{}, err
	}
	return attendanceDocument{
		ID:         id,
		EmployeeID: employeeID,
		Date:       a.Date,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}, nil
}

func (d attendanceDocument) model() model.Attendance {
	return model.Attendance{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID.Hex(),
		Date:       d.Date,
		Status:     model.AttendanceStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
