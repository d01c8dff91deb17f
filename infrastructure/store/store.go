// Package store opens the backend selected by configuration and exposes it
// through the repository interfaces the services depend on.
package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/database"
	"hrmslite.com/hrms/infrastructure/memory"
	"hrmslite.com/hrms/infrastructure/mongodb"
)

type Store struct {
	Driver     string
	Employees  core.EmployeeRepository
	Attendance core.AttendanceRepository

	ensureIndexes func(context.Context) error
	ping          func(context.Context) error
	close         func(context.Context) error
}

// Open connects to the configured backend. The caller owns the returned store
// and must Close it.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (*Store, error) {
	logger = logger.With(zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case "mongo":
		connectCtx := ctx
		if cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
			defer cancel()
		}
		client, err := mongodb.Connect(connectCtx, cfg.URI, cfg.Database, cfg.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to mongodb", zap.String("database", cfg.Database))
		return &Store{
			Driver:        cfg.Driver,
			Employees:     client.Employees(),
			Attendance:    client.Attendance(),
			ensureIndexes: client.EnsureIndexes,
			ping:          client.Ping,
			close:         client.Close,
		}, nil

	case "mysql", "postgres", "sqlite":
		dm, err := database.New(cfg.Driver, cfg.DSN, cfg.MaxConnections, database.ParseLogLevel(cfg.LogLevel))
		if err != nil {
			return nil, err
		}
		logger.Info("connected to sql database")
		return &Store{
			Driver:        cfg.Driver,
			Employees:     dm.Employees(),
			Attendance:    dm.Attendance(),
			ensureIndexes: dm.Migrate,
			ping:          dm.Ping,
			close:         func(context.Context) error { return dm.Close() },
		}, nil

	case "memory":
		s := memory.NewStore()
		logger.Warn("using in-memory store; data is lost on exit")
		return &Store{
			Driver:        cfg.Driver,
			Employees:     s.Employees(),
			Attendance:    s.Attendance(),
			ensureIndexes: func(context.Context) error { return nil },
			ping:          s.Ping,
			close:         func(context.Context) error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// EnsureIndexes creates the tables, collections and indexes the backend
// needs. It is safe to run on every start.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	return s.ensureIndexes(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
