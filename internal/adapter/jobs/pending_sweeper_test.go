package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) SweepExpired(ctx context.Context) (int64, error) {
	s.calls.Add(1)
	return 2, s.err
}

func TestStartPendingSweeper(t *testing.T) {
	t.Run("runs until cancelled", func(t *testing.T) {
		s := &countingSweeper{}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()

		StartPendingSweeper(ctx, 10*time.Millisecond, s)

		if s.calls.Load() < 2 {
			t.Fatalf("expected several sweeps, got %d", s.calls.Load())
		}
	})

	t.Run("keeps running after errors", func(t *testing.T) {
		s := &countingSweeper{err: errors.New("db down")}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()

		StartPendingSweeper(ctx, 10*time.Millisecond, s)

		if s.calls.Load() < 2 {
			t.Fatalf("expected several sweeps, got %d", s.calls.Load())
		}
	})

	t.Run("disabled interval returns immediately", func(t *testing.T) {
		s := &countingSweeper{}
		StartPendingSweeper(context.Background(), 0, s)
		if s.calls.Load() != 0 {
			t.Fatalf("expected no sweeps, got %d", s.calls.Load())
		}
	})
}
