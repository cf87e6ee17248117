package middleware

import (
	"github.com/gin-gonic/gin"

	"delete-on-check/pkg/log"
	"delete-on-check/pkg/response"
)

const traceHeader = "X-Request-ID"

// RateLimit rejects clients that exceed their request budget with 429.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}
		ip := clientIP(c.Request)
		if !mw.limiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// Trace puts a request id into the request context so log lines carry it. An
// incoming X-Request-ID is reused.
func (mw Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := log.WithTraceID(c.Request.Context(), c.GetHeader(traceHeader))
		c.Request = c.Request.WithContext(ctx)
		c.Header(traceHeader, log.TraceID(ctx))
		c.Next()
	}
}
