package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Planning calls are idempotent, so transient provider failures are
// retried with exponential backoff and jitter. Two classes never repeat
// beyond policy: a truncated response (the budget will not grow on retry)
// and a second schema rejection in a row (the model is not going to start
// following the schema by being asked again).

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with the retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	rejectedOnce := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &rejectedOnce) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, rejectedOnce *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return false
	}

	// One schema rejection gets a second chance, two means the prompt or
	// schema is broken.
	var rejected *ErrInvalidResponse
	if errors.As(err, &rejected) {
		if *rejectedOnce {
			return false
		}
		*rejectedOnce = true
		return true
	}

	// Rate limits, 5xx, and anything unclassified (network errors mostly)
	// count as transient.
	return true
}

// wait computes the backoff for an attempt, honoring a provider-supplied
// Retry-After when there is one.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if w > float64(r.cfg.MaxWait) {
		w = float64(r.cfg.MaxWait)
	}
	w += w * 0.2 * (2*rand.Float64() - 1) // ±20% jitter
	if w < 0 {
		w = 0
	}
	return time.Duration(w)
}
