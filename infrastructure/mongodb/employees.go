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

type EmployeeRepository struct {
	collection *mongo.Collection
}

func (r *EmployeeRepository) List(ctx context.Context, limit int) ([]model.Employee, error) {
	opts := options.Find().SetSort(employeeSort)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{}, opts)
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc employeeDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find employee %s: %w", id, err)
	}
	e := doc.model()
	return &e, nil
}

func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Employee, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []model.Employee{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *EmployeeRepository) FindConflicts(ctx context.Context, employeeID, email, excludeID string) ([]model.Employee, error) {
	filter := conflictFilter(employeeID, email, excludeID)
	if filter == nil {
		return nil, nil
	}
	return r.find(ctx, filter, options.Find().SetLimit(2))
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	doc, err := newEmployeeDocument(employee)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return writeError("insert employee", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, changes core.EmployeeChanges) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, employeeUpdate(changes)); err != nil {
		return writeError("update employee", err)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete employee %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (r *EmployeeRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Employee, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	out := make([]model.Employee, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func writeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %v", op, core.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
