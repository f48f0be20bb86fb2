package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Run(t *testing.T) {
	t.Run("should stop sessions past the cutoff while running", func(t *testing.T) {
		f := setupEngine(t)
		_, err := f.engine.Start(context.Background(), "alice", "proj-1")
		require.NoError(t, err)
		f.clock.SetTime(day(17, 1))

		monitor := NewMonitor(f.engine, 5*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			monitor.Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool {
			return f.engine.Current("alice") == nil
		}, time.Second, 5*time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("monitor did not stop after context cancellation")
		}

		stored, err := f.records.FindOpenRecord(context.Background(), "alice")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should exit promptly when the context is cancelled", func(t *testing.T) {
		f := setupEngine(t)
		monitor := NewMonitor(f.engine, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			monitor.Run(ctx)
			close(done)
		}()

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("monitor did not stop after context cancellation")
		}
	})
}
