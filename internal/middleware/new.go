package middleware

import (
	"delete-on-check/pkg/log"
)

// Middleware bundles the gin middlewares shared by the HTTP routes.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middlewares. A non-positive requestsPerMin disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
