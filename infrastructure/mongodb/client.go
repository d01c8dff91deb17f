// Package mongodb stores employees and attendance in MongoDB, the default
// backend. Documents keep the camelCase field names of the JSON API.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	employeesCollection   = "employees"
	attendancesCollection = "attendances"
)

type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect dials uri and pings the primary. timeout bounds server selection.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Client, error) {
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetServerSelectionTimeout(timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{client: client, database: client.Database(database)}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Client) Employees() *EmployeeRepository {
	return &EmployeeRepository{collection: c.database.Collection(employeesCollection)}
}

func (c *Client) Attendance() *AttendanceRepository {
	return &AttendanceRepository{collection: c.database.Collection(attendancesCollection)}
}

// EnsureIndexes creates the unique employee indexes and the lookup indexes.
// It is idempotent.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	for name, models := range indexModels() {
		if _, err := c.database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		employeesCollection: {
			{Keys: bson.D{{Key: "employeeId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "department", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		attendancesCollection: {
			{Keys: bson.D{{Key: "employeeId", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: -1}}},
		},
	}
}
