package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"sapportal/prometheus"
)

// LoginRateLimiter limits login attempts per client IP. The window and count
// come from configuration (default 5 attempts per 15 minutes).
func LoginRateLimiter(max int, window time.Duration) echo.MiddlewareFunc {
	limit := rate.Limit(float64(max) / window.Seconds())
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     max,
			ExpiresIn: window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"success": false, "message": "too many login attempts"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			prometheus.RecordAuthError("rate_limited")
			return c.JSON(http.StatusTooManyRequests, echo.Map{"success": false, "message": "too many login attempts, try again later"})
		},
	})
}
