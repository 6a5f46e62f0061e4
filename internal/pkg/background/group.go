package background

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Group runs fire-and-forget work on a context detached from the request.
// Once Shutdown has been called new tasks are dropped, so the drain never
// races a late Go.
type Group struct {
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func New(timeout time.Duration) *Group {
	return &Group{timeout: timeout}
}

func (g *Group) Go(name string, fn func(ctx context.Context) error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		slog.Warn("background task dropped after shutdown", slog.String("task", name))
		return
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			slog.Warn("background task failed", slog.String("task", name), slog.String("error", err.Error()))
		}
	}()
}

// Wait blocks until every task started so far has returned. The group stays
// open; callers must not start tasks concurrently with Wait.
func (g *Group) Wait() {
	g.wg.Wait()
}

// Shutdown stops accepting tasks and waits for running ones, or for ctx.
func (g *Group) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
