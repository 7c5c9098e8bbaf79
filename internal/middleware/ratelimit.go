package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/charterpoint/transport-leads-api/internal/config"
)

// IntakeRateLimiter applies a per-client token bucket to the public form
// endpoints. Buckets are keyed by remote IP so one aggressive submitter
// cannot starve legitimate visitors.
func IntakeRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			mu.Lock()
			limiter, ok := limiters[ip]
			if !ok {
				limiter = rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
				limiters[ip] = limiter
			}
			allowed := limiter.Allow()
			mu.Unlock()

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many submissions, please retry shortly"})
			}

			return next(c)
		}
	}
}
