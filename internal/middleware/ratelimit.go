package middleware

import (
	"AstroCore/internal/service/ratelimit"
	xhttp "AstroCore/pkg/http"

	"github.com/labstack/echo/v4"
)

// RateLimit rejects requests over the per-client budget with 429. Buckets are
// keyed by client IP.
func RateLimit(l *ratelimit.Limiter, rps float64, burst int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP(), float64(burst), rps) {
				return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
			}
			return next(c)
		}
	}
}
