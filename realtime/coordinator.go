package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
)

type RefreshFunc func(ctx context.Context) error

// RefreshCoordinator collapses bursts of triggers into at most one running
// refresh plus one queued refresh. One instance is shared by every trigger
// source it serves.
type RefreshCoordinator struct {
	name    string
	refresh RefreshFunc
	quiet   time.Duration
	metrics *metrics.Metrics

	mu       sync.Mutex
	inFlight bool
	pending  bool
	idle     *sync.Cond
	ctx      context.Context
}

func NewRefreshCoordinator(ctx context.Context, name string, quiet time.Duration, refresh RefreshFunc, m *metrics.Metrics) *RefreshCoordinator {
	c := &RefreshCoordinator{
		name:    name,
		refresh: refresh,
		quiet:   quiet,
		metrics: m,
		ctx:     ctx,
	}
	c.idle = sync.NewCond(&c.mu)
	return c
}

// Trigger requests a refresh. It returns immediately.
func (c *RefreshCoordinator) Trigger() {
	c.mu.Lock()
	if c.inFlight {
		c.pending = true
		c.mu.Unlock()
		c.metrics.RefreshCoalesced(c.name)
		return
	}
	c.inFlight = true
	c.mu.Unlock()

	go c.run()
}

func (c *RefreshCoordinator) run() {
	for {
		c.metrics.RefreshRun(c.name)
		if err := c.refresh(c.ctx); err != nil {
			logging.Log.Warnf("REALTIME: %s refresh failed: %v", c.name, err)
		}

		if c.quiet > 0 {
			select {
			case <-time.After(c.quiet):
			case <-c.ctx.Done():
			}
		}

		c.mu.Lock()
		if !c.pending || c.ctx.Err() != nil {
			c.inFlight = false
			c.pending = false
			c.idle.Broadcast()
			c.mu.Unlock()
			return
		}
		c.pending = false
		c.mu.Unlock()
	}
}

// Wait blocks until no refresh is running or queued.
func (c *RefreshCoordinator) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inFlight {
		c.idle.Wait()
	}
}

// Busy reports whether a refresh is running or waiting out its quiet window.
func (c *RefreshCoordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Follow triggers a refresh for every event delivered on sub until the
// subscription is closed.
func (c *RefreshCoordinator) Follow(sub *Subscription) {
	go func() {
		for range sub.C {
			c.Trigger()
		}
	}()
}
