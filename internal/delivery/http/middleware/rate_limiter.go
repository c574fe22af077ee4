package middleware

import (
	"net/http"

	"linkscan/config"
	"linkscan/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewScanRateLimiter builds the per-IP limiter guarding the scan endpoint.
// The window and budget come from config; the store evicts idle clients
// after one full window.
func NewScanRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	requests := cfg.RateLimit.Requests
	window := cfg.RateLimit.Window

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(requests) / window.Seconds()),
			Burst:     requests,
			ExpiresIn: window,
		},
	)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Message(c, http.StatusForbidden, "Unable to identify client.")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Message(c, http.StatusTooManyRequests,
				"Too many requests, please try again later.")
		},
	})
}
