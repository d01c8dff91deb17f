package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/store"
	"hrmslite.com/hrms/logging"
	"hrmslite.com/hrms/security"
	"hrmslite.com/hrms/web"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatal("failed to create logger: ", err)
	}
	defer logger.Sync()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	if err := st.EnsureIndexes(ctx); err != nil {
		return err
	}

	deps := web.Dependencies{
		Employees:  core.NewEmployeeService(st.Employees, st.Attendance),
		Attendance: core.NewAttendanceService(st.Employees, st.Attendance, loc),
		Store:      st,
		Logger:     logger,
	}

	if cfg.Auth.SigningSecret != "" {
		secret, err := security.DecodeSecret(cfg.Auth.SigningSecret)
		if err != nil {
			return err
		}
		deps.JWTSecret = secret
	} else {
		logger.Warn("no signing secret configured, /api is open")
	}

	if cfg.Slack.Token != "" {
		deps.Notifier = communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
			InfoChannelID:  cfg.Slack.InfoChannel,
			ErrorChannelID: cfg.Slack.ErrorChannel,
		})
	}

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: web.WithCORS(web.NewRouter(deps), cfg.Server.CorsOrigins),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", st.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
