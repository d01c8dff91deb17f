package main

import (
	"bytes"
	"context"
	"flag"
	"log"

	"go.uber.org/zap"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/filesystem"
	"hrmslite.com/hrms/infrastructure/spreadsheet"
	"hrmslite.com/hrms/infrastructure/store"
	"hrmslite.com/hrms/logging"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// export writes the attendance listing as an xlsx workbook to a local path or
// an s3://bucket/key URL.
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	date := flag.String("date", "", "only records of this day (YYYY-MM-DD)")
	employeeID := flag.String("employee", "", "only records of this employee (_id)")
	out := flag.String("out", "attendance.xlsx", "output location, local or s3://")
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

	if err := run(ctx, cfg, logger, core.AttendanceQuery{Date: *date, EmployeeID: *employeeID}, *out); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, q core.AttendanceQuery, out string) error {
	loc, err := filesystem.ParseLocation(out)
	if err != nil {
		return err
	}
	tz, err := cfg.Location()
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	records, err := core.NewAttendanceService(st.Employees, st.Attendance, tz).List(ctx, q)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteAttendance(&buf, records); err != nil {
		return err
	}

	fs, err := filesystem.NewFor(ctx, loc)
	if err != nil {
		return err
	}
	if err := fs.WriteFile(ctx, loc, buf.Bytes(), xlsxContentType); err != nil {
		return err
	}
	logger.Info("attendance exported", zap.Int("records", len(records)), zap.String("location", loc.String()))
	return nil
}
