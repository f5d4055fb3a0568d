// Package runner guards long-running loops so they are started at most once.
package runner

import (
	"errors"
	"sync"
)

// ErrAlreadyRun is returned when a Runner is started a second time.
var ErrAlreadyRun = errors.New("already running or has finished running, it can only be run once")

// Runner is a thread-safe structure that can be started, finished, and queried.
// The zero value is ready to use.
type Runner struct {
	mu      sync.Mutex
	running bool
	done    bool
}

// Start marks the runner as running.  It fails if the runner was started before.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running || r.done {
		return ErrAlreadyRun
	}
	r.running = true
	return nil
}

// Finish marks the runner as done, regardless if it ran.
func (r *Runner) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.done = true
}

// IsRunning determines if the runner is running.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// IsDone determines if the runner has been finished.
func (r *Runner) IsDone() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}
