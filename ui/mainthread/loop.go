// Package mainthread provides a single goroutine that ui work is posted to.
package mainthread

import (
	"context"
	"fmt"
	"sync"

	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/log"
	"github.com/gspinelli/gskit/runner"
)

type (
	// Loop runs posted funcs in the order they were posted on the goroutine calling Run.
	Loop struct {
		log    log.Logger
		runner runner.Runner
		mu     sync.Mutex
		funcs  []func()
		wakeC  chan struct{}
	}

	// Config contains the options of a Loop.
	Config struct {
		// Log is used to report funcs that panic.
		Log log.Logger
	}
)

// Loop implements the backend.Queue interface.
var _ backend.Queue = (*Loop)(nil)

// NewLoop creates a loop from the config.
func (cfg Config) NewLoop() (*Loop, error) {
	if cfg.Log == nil {
		return nil, fmt.Errorf("creating main thread loop: log required")
	}
	l := Loop{
		log:   cfg.Log,
		wakeC: make(chan struct{}, 1),
	}
	return &l, nil
}

// Post adds the func to the end of the queue.  It never blocks, and can be called from a posted func.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.funcs = append(l.funcs, fn)
	l.mu.Unlock()
	select {
	case l.wakeC <- struct{}{}:
	default:
	}
}

// Run runs posted funcs until the context is done.  Funcs still queued when the context is done are dropped.
// The loop can only be run once.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.runner.Start(); err != nil {
		return fmt.Errorf("running main thread loop: %w", err)
	}
	defer l.runner.Finish()
	for {
		for _, fn := range l.take() {
			if ctx.Err() != nil {
				return nil
			}
			l.run(fn)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-l.wakeC:
		}
	}
}

// Running determines if the loop is running.
func (l *Loop) Running() bool {
	return l.runner.IsRunning()
}

// take removes the queued funcs.
func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	funcs := l.funcs
	l.funcs = nil
	return funcs
}

// run calls the func, logging it if it panics.
func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Errorf("posted func panicked: %v", r)
		}
	}()
	fn()
}
