package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/leadscope/backend/logging"
)

// StatsMiddleware records every visitor and periodically flushes the
// statistics to disk. Analysis outcomes are tracked by the handlers
// themselves, since only they know the lead quality a run produced.
func StatsMiddleware(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Flush every 100th request so a restart loses little history.
		if total, ok := stats.GetStatistics()["totalRequests"].(int); ok && total > 0 && total%100 == 0 {
			go stats.Save()
		}
	}
}
