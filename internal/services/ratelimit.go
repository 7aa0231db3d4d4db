package services

import (
	"context"

	"golang.org/x/time/rate"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/config"
)

// newRateLimiter returns a token bucket for one upstream. Throttling is off
// when no positive rate is configured.
func newRateLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}

// waitForSlot blocks until the limiter admits one call. A cancelled context
// or a wait that would outlive its deadline counts as an upstream failure.
func waitForSlot(ctx context.Context, limiter *rate.Limiter, operation string) error {
	if err := limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrUpstreamService, operation, err)
	}
	return nil
}
