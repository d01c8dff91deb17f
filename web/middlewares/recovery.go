package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hrmslite.com/hrms/web/common"
)

// Recovery turns a panic into a 500 envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		_ = c.Error(err)
		logger.Error("panic recovered", zap.Error(err), zap.String("requestId", GetRequestID(c)), zap.Stack("stack"))

		res := common.NewErrorResponse("Internal server error")
		res.Error = err.Error()
		c.AbortWithStatusJSON(http.StatusInternalServerError, res)
	})
}
