package jobs

import (
	"context"
	"log"
	"time"
)

// Sweeper deletes expired pending authorizations.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// StartPendingSweeper runs s every interval until ctx is done. A non-positive
// interval disables the job.
func StartPendingSweeper(ctx context.Context, interval time.Duration, s Sweeper) {
	if interval <= 0 {
		log.Printf("[auth][sweeper] disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				log.Printf("[auth][sweeper] sweep failed err=%v", err)
				continue
			}
			if n > 0 {
				log.Printf("[auth][sweeper] removed expired authorizations count=%d", n)
			}
		}
	}
}
