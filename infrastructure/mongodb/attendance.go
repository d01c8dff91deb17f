package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
)

type AttendanceRepository struct {
	collection *mongo.Collection
}

func (r *AttendanceRepository) List(ctx context.Context, filter core.AttendanceFilter) ([]model.Attendance, error) {
	query, ok := attendanceFilter(filter)
	if !ok {
		return []model.Attendance{}, nil
	}

	opts := options.Find().SetSort(attendanceSort)
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}

	out := make([]model.Attendance, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id string) (*model.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc attendanceDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance %s: %w", id, err)
	}
	a := doc.model()
	return &a, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	doc, err := newAttendanceDocument(attendance)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return writeError("insert attendance", err)
	}
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, id string, changes core.AttendanceChanges) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, attendanceUpdate(changes)); err != nil {
		return writeError("update attendance", err)
	}
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete attendance %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return 0, nil
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"employeeId": oid})
	if err != nil {
		return 0, fmt.Errorf("delete attendance of employee %s: %w", employeeID, err)
	}
	return res.DeletedCount, nil
}

func (r *AttendanceRepository) Count(ctx context.Context, status model.AttendanceStatus) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, statusFilter(status))
	if err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return n, nil
}
