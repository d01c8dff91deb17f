// Package web assembles the HTTP surface: gin routes, middlewares and CORS.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/web/common"
	"hrmslite.com/hrms/web/handlers/attendance"
	"hrmslite.com/hrms/web/handlers/employee"
	"hrmslite.com/hrms/web/handlers/health"
	"hrmslite.com/hrms/web/middlewares"
)

type Dependencies struct {
	Employees  *core.EmployeeService
	Attendance *core.AttendanceService
	Store      health.Pinger
	Logger     *zap.Logger
	// Notifier receives 5xx alerts. Nil disables alerting.
	Notifier middlewares.Notifier
	// JWTSecret protects /api. Nil leaves the API open.
	JWTSecret []byte
}

func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middlewares.RequestID(), middlewares.RequestLogger(logger))
	if deps.Notifier != nil {
		r.Use(middlewares.Alerting(deps.Notifier, logger))
	}
	r.Use(middlewares.Recovery(logger))

	// liveness stays reachable without a token
	health.Register(r, deps.Store)

	api := r.Group("/api")
	if len(deps.JWTSecret) > 0 {
		api.Use(middlewares.Authentication(deps.JWTSecret))
	}
	employee.Register(api, deps.Employees)
	attendance.Register(api, deps.Attendance)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Route not found"))
	})
	return r
}

// WithCORS wraps handler with CORS handling for origins. "*" allows any
// origin.
func WithCORS(handler http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader, "Content-Disposition"},
	}).Handler(handler)
}
