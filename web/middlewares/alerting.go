package middlewares

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Notifier posts operational messages, e.g. to Slack.
type Notifier interface {
	Error(message string) error
}

// Alerting reports every 5xx response to notifier. Delivery failures are
// logged and never affect the response.
func Alerting(notifier Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 500 {
			return
		}

		msg := fmt.Sprintf(":rotating_light: %s %s returned %d (request %s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), GetRequestID(c))
		if len(c.Errors) > 0 {
			msg += "\n" + strings.Join(c.Errors.Errors(), "\n")
		}
		if err := notifier.Error(msg); err != nil {
			logger.Warn("failed to send alert", zap.Error(err))
		}
	}
}
