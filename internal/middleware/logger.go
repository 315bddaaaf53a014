package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/homeloan/internal/logger"
)

// RequestLogger is a Gin middleware that emits one structured log line per
// request once the handler chain has finished.
//
// Logged fields: request_id (if RequestID() ran first), method, path, status,
// latency_ms and client_ip.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-...","method":"POST","path":"/","status":200,"latency_ms":1,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		if c.Writer.Status() >= 500 {
			ev = logger.L().Error()
		}
		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
