// Package loop runs a game at a fixed tick rate outside of Bubble Tea.
// A Driver owns at most one ticking goroutine at any time.
package loop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// StepFunc runs one tick. Returning false stops the driver.
// A StepFunc must not call back into the Driver that runs it.
type StepFunc func() bool

// Driver calls a StepFunc at a fixed interval on its own goroutine.
// Ticks never overlap: each step completes before the next one starts.
type Driver struct {
	interval time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	runs   uint64
}

// NewDriver creates a stopped driver. A nil logger discards output and a
// non-positive interval falls back to 50 ticks per second.
func NewDriver(interval time.Duration, logger *log.Logger) *Driver {
	if interval <= 0 {
		interval = time.Second / 50
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		interval: interval,
		logger:   logger,
	}
}

// Start cancels any active run, waits for it to exit, then starts a new one.
// At most one run is ever active.
func (d *Driver) Start(ctx context.Context, step StepFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.runs++

	d.logger.Debug("driver started", "run", d.runs, "interval", d.interval)
	go d.run(runCtx, step, done, d.runs)
}

// Stop cancels the active run and waits for it to exit.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.cancel = nil
	d.done = nil
}

// Active reports whether a run is still ticking.
func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

// Wait blocks until the current run ends on its own or is stopped.
func (d *Driver) Wait() {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Runs returns how many runs have been started.
func (d *Driver) Runs() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runs
}

func (d *Driver) run(ctx context.Context, step StepFunc, done chan struct{}, id uint64) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("driver canceled", "run", id)
			return
		case <-ticker.C:
			if !step() {
				d.logger.Debug("driver finished", "run", id)
				return
			}
		}
	}
}
