package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hrmslite.com/hrms/model"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// ParseLogLevel maps a config value to a LogLevel. Unknown values are silent.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	case "info":
		return LogLevelInfo
	default:
		return LogLevelSilent
	}
}

func (l LogLevel) gorm() logger.LogLevel {
	switch l {
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	case LogLevelInfo:
		return logger.Info
	case LogLevelSilent:
		return logger.Silent
	default:
		return logger.Info
	}
}

type DatabaseManager struct {
	DB       *gorm.DB
	SqlDB    *sql.DB
	LogLevel LogLevel
}

// Dialector picks the gorm dialect for a store driver name.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// New opens the pool (e.g. 30 conns) and checks it with a ping.
func New(driver, dsn string, maxConnection int, level LogLevel) (*DatabaseManager, error) {
	dialector, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	return NewWithDialector(dialector, maxConnection, level)
}

func NewWithDialector(dialector gorm.Dialector, maxConnection int, level LogLevel) (*DatabaseManager, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(level.gorm()),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	if maxConnection > 0 {
		sqlDB.SetMaxOpenConns(maxConnection)
		sqlDB.SetMaxIdleConns(maxConnection)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{DB: db, SqlDB: sqlDB, LogLevel: level}, nil
}

// Migrate creates or alters the employees and attendances tables and their
// indexes.
func (dm *DatabaseManager) Migrate(ctx context.Context) error {
	if err := dm.DB.WithContext(ctx).AutoMigrate(&model.Employee{}, &model.Attendance{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func (dm *DatabaseManager) Ping(ctx context.Context) error {
	return dm.SqlDB.PingContext(ctx)
}

// Close closes the global pool
func (dm *DatabaseManager) Close() error {
	return dm.SqlDB.Close()
}

func (dm *DatabaseManager) Employees() *EmployeeRepository {
	return &EmployeeRepository{db: dm.DB}
}

func (dm *DatabaseManager) Attendance() *AttendanceRepository {
	return &AttendanceRepository{db: dm.DB}
}
