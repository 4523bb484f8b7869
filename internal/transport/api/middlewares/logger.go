package middlewares

import (
	"net/http"
	"time"

	"github.com/fsdevblog/bankoffice/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки попадают только в лог.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := logger.Component(l, "http", "")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := entry.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
			"size":    c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			fields = fields.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			fields.Error("request failed")
		case status >= http.StatusBadRequest:
			fields.Warn("request rejected")
		default:
			fields.Info("request handled")
		}
	}
}
