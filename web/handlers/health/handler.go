package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoint struct {
	store Pinger
}

func Register(r gin.IRoutes, store Pinger) {
	endpoint := &Endpoint{store: store}
	r.GET("/", endpoint.Root)
	r.GET("/api/health", endpoint.Health)
}

func (ep *Endpoint) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "HRMS Lite API is running",
		"version": Version,
	})
}

func (ep *Endpoint) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := ep.store.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":  false,
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"status":   "healthy",
		"database": "connected",
	})
}
