package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
)

// objectIDs converts hex ids, dropping malformed ones.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

// conflictFilter matches employees holding employeeID or email. It returns
// nil when both are empty.
func conflictFilter(employeeID, email, excludeID string) bson.M {
	var or bson.A
	if employeeID != "" {
		or = append(or, bson.M{"employeeId": employeeID})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil
	}

	filter := bson.M{"$or": or}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return filter
}

func employeeUpdate(changes core.EmployeeChanges) bson.M {
	set := bson.M{"updatedAt": changes.UpdatedAt}
	if changes.EmployeeID != nil {
		set["employeeId"] = *changes.EmployeeID
	}
	if changes.FullName != nil {
		set["fullName"] = *changes.FullName
	}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.Department != nil {
		set["department"] = *changes.Department
	}
	return bson.M{"$set": set}
}

// attendanceFilter builds the listing query. ok is false when the employee id
// is malformed and so nothing can match.
func attendanceFilter(filter core.AttendanceFilter) (query bson.M, ok bool) {
	query = bson.M{}
	if filter.EmployeeID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.EmployeeID)
		if err != nil {
			return nil, false
		}
		query["employeeId"] = oid
	}

	if filter.From != nil || filter.To != nil {
		date := bson.M{}
		if filter.From != nil {
			date["$gte"] = *filter.From
		}
		if filter.To != nil {
			date["$lte"] = *filter.To
		}
		query["date"] = date
	}
	return query, true
}

func attendanceUpdate(changes core.AttendanceChanges) bson.M {
	set := bson.M{"updatedAt": changes.UpdatedAt}
	if changes.Status != nil {
		set["status"] = string(*changes.Status)
	}
	if changes.Date != nil {
		set["date"] = *changes.Date
	}
	return bson.M{"$set": set}
}

func statusFilter(status model.AttendanceStatus) bson.M {
	if status == "" {
		return bson.M{}
	}
	return bson.M{"status": string(status)}
}

var (
	employeeSort   = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	attendanceSort = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}
)
