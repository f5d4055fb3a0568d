// Package hud shows a modal activity overlay while long-running work is in progress.
//
// The overlay is reference counted: every Show must be balanced by a Dismiss, and the
// overlay is only removed when the last outstanding Show is dismissed.
package hud

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gspinelli/gskit/log"
)

const (
	// DefaultFadeIn is the fade-in duration used when the config does not specify one.
	DefaultFadeIn = 200 * time.Millisecond
	// DefaultFadeOut is the fade-out duration used when the config does not specify one.
	DefaultFadeOut = 250 * time.Millisecond
)

type (
	// Renderer mounts overlay windows.
	Renderer interface {
		// Open mounts a new, opaque window.  The status is shown if it is not empty.
		Open(id uuid.UUID, status string) Window
	}

	// Window is a mounted overlay.
	Window interface {
		// SetStatus replaces the text shown under the activity indicator.
		SetStatus(status string)
		// FadeIn animates the window from transparent to fully opaque.
		FadeIn(d time.Duration)
		// FadeOut animates the window to be fully transparent, calling done when finished.
		FadeOut(d time.Duration, done func())
		// Close unmounts the window.  Closing a closed window does nothing.
		Close()
	}

	// Controller counts outstanding requests to show the overlay.
	// It is safe to call from any goroutine.
	Controller struct {
		renderer Renderer
		log      log.Logger
		fadeIn   time.Duration
		fadeOut  time.Duration
		mu       sync.Mutex
		count    int
		window   Window
		windowID uuid.UUID
	}

	// Config contains the options of a Controller.
	Config struct {
		// Renderer mounts the overlay.
		Renderer Renderer
		// Log records when the overlay is opened and closed.
		Log log.Logger
		// FadeIn is how long the overlay takes to appear.
		// Zero uses DefaultFadeIn and a negative duration shows the overlay without animation.
		FadeIn time.Duration
		// FadeOut is how long an animated dismissal takes.
		// Zero uses DefaultFadeOut and a negative duration closes the overlay without animation.
		FadeOut time.Duration
	}
)

// NewController creates a Controller from the config.
func (cfg Config) NewController() (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating overlay controller: validation: %w", err)
	}
	c := Controller{
		renderer: cfg.Renderer,
		log:      cfg.Log,
		fadeIn:   durationOrDefault(cfg.FadeIn, DefaultFadeIn),
		fadeOut:  durationOrDefault(cfg.FadeOut, DefaultFadeOut),
	}
	return &c, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Renderer == nil:
		return fmt.Errorf("renderer required")
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	}
	return nil
}

func durationOrDefault(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}
	return d
}

// Show mounts the overlay if it is not visible and counts the request to show it.
func (c *Controller) Show(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		c.open(status)
	}
	c.count++
}

// SetStatus changes the status of the visible overlay.  It does nothing if no overlay is visible.
func (c *Controller) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.window != nil {
		c.window.SetStatus(status)
	}
}

// Dismiss balances a call to Show.  When the last call is balanced, the overlay is removed,
// fading out first if animated.  Extra calls do nothing.
func (c *Controller) Dismiss(animated bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count == 0 {
		return
	}
	c.count--
	if c.count == 0 {
		c.close(animated)
	}
}

// DismissNow removes the overlay immediately, regardless of how many calls to Show are outstanding.
func (c *Controller) DismissNow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.close(false)
}

// Count is the number of calls to Show that have not been dismissed.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Visible determines if an overlay is mounted and not being removed.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window != nil
}

// open mounts a new window.  The lock must be held.
func (c *Controller) open(status string) {
	c.windowID = uuid.New()
	c.window = c.renderer.Open(c.windowID, status)
	if c.fadeIn > 0 {
		c.window.FadeIn(c.fadeIn)
	}
	c.log.Debugf("overlay %v opened", c.windowID)
}

// close detaches the window and removes it.  The lock must be held.
// The fade-out completion closes the detached window only, so an overlay opened while it fades is unaffected.
func (c *Controller) close(animated bool) {
	w := c.window
	if w == nil {
		return
	}
	id := c.windowID
	c.window = nil
	c.windowID = uuid.Nil
	if !animated || c.fadeOut <= 0 {
		w.Close()
		c.log.Debugf("overlay %v closed", id)
		return
	}
	w.FadeOut(c.fadeOut, func() {
		w.Close()
		c.log.Debugf("overlay %v closed after fading out", id)
	})
}
