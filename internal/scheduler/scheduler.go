// Package scheduler provides a cooperative tick source. Presentation
// state (splash progress, carousel auto-advance) consumes tick events
// instead of owning timers.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"floordecor-be/internal/logger"
)

// Ticker emits ticks on a channel at a fixed interval. Run blocks
// until the context is cancelled; pacing uses a token bucket so a
// slow consumer never accumulates a backlog of stale ticks.
type Ticker struct {
	limiter *rate.Limiter
	ticks   chan time.Time
}

// NewTicker creates a ticker that fires once per interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		ticks:   make(chan time.Time),
	}
}

// Ticks returns the channel tick events arrive on. The channel is
// closed when Run returns.
func (t *Ticker) Ticks() <-chan time.Time {
	return t.ticks
}

// Run emits ticks until ctx is cancelled, then closes the tick
// channel.
func (t *Ticker) Run(ctx context.Context) {
	defer close(t.ticks)

	// the limiter starts with one token, consume it so the first
	// tick arrives a full interval after Run starts
	_ = t.limiter.Wait(ctx)

	for {
		if err := t.limiter.Wait(ctx); err != nil {
			logger.FromCtx(ctx).Debug("ticker stopped", zap.Error(err))
			return
		}
		select {
		case t.ticks <- time.Now():
		case <-ctx.Done():
			return
		}
	}
}
