package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/filesystem"
	"hrmslite.com/hrms/infrastructure/store"
	"hrmslite.com/hrms/logging"
	"hrmslite.com/hrms/utils"
)

// seed creates the store indexes (or tables) and optionally loads employees
// from a CSV file with the header employeeId,fullName,email,department. The file
// may be a local path or an s3://bucket/key URL.
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	csvPath := flag.String("employees", "", "CSV file of employees to import, local or s3://")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatal("failed to create logger: ", err)
	}
	defer logger.Sync()

	if err := run(ctx, cfg, logger, *csvPath); err != nil {
		logger.Error("seed failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, csvPath string) error {
	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	return seed(ctx, st, logger, csvPath)
}

// seed prepares st and, when csvPath is set, imports its rows. Rows rejected
// by validation are logged and skipped.
func seed(ctx context.Context, st *store.Store, logger *zap.Logger, csvPath string) error {
	if err := st.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	logger.Info("indexes ready", zap.String("store", st.Driver))

	if csvPath == "" {
		return nil
	}

	loc, err := filesystem.ParseLocation(csvPath)
	if err != nil {
		return err
	}
	fs, err := filesystem.NewFor(ctx, loc)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := fs.ReadFile(ctx, loc, &buf); err != nil {
		return fmt.Errorf("failed to read %s: %w", loc, err)
	}

	rows, err := utils.ParseCSV(&buf)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", loc, err)
	}

	service := core.NewEmployeeService(st.Employees, st.Attendance)
	created := 0
	for i, row := range rows {
		_, err := service.Create(ctx, core.NewEmployee{
			EmployeeID: row["employeeId"],
			FullName:   row["fullName"],
			Email:      row["email"],
			Department: row["department"],
		})
		if err != nil {
			if core.KindOf(err) == core.KindInternal {
				return err
			}
			logger.Warn("skipped row", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		created++
	}
	logger.Info("employees imported", zap.Int("created", created), zap.Int("rows", len(rows)))
	return nil
}
