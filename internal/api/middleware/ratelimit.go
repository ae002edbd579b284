package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/api/metrics"
)

// RateLimiter counts a hit for key within the current window and reports
// whether the request is still within budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit applies a per-client-IP request budget. Limiter failures (e.g.
// redis down) fail open with a logged warning.
func RateLimit(limiter RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"too many requests from this IP, please try again later")
			}
			return next(c)
		}
	}
}
