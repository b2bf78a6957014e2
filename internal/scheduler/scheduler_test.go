package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicker_Run(t *testing.T) {
	t.Run("Emits ticks at the configured interval", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ticker := NewTicker(5 * time.Millisecond)
		go ticker.Run(ctx)

		start := time.Now()
		for i := 0; i < 3; i++ {
			select {
			case <-ticker.Ticks():
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for tick")
			}
		}

		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("Closes the tick channel on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		ticker := NewTicker(time.Millisecond)
		done := make(chan struct{})
		go func() {
			ticker.Run(ctx)
			close(done)
		}()

		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}

		_, open := <-ticker.Ticks()
		assert.False(t, open)
	})
}
