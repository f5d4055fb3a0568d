// Package term renders the overlay as a spinner on a terminal.
package term

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gspinelli/gskit/ui/hud"
	"github.com/schollz/progressbar/v3"
)

// DefaultTick is how often the spinner advances when the config does not specify it.
const DefaultTick = 100 * time.Millisecond

type (
	// Renderer draws spinners on a writer, usually os.Stderr.
	Renderer struct {
		w    io.Writer
		tick time.Duration
	}

	// Config contains the options of a Renderer.
	Config struct {
		// Tick is how often the spinner advances.
		Tick time.Duration
	}

	// window is a spinner that advances until it is closed.
	window struct {
		bar       *progressbar.ProgressBar
		stopC     chan struct{}
		stoppedC  chan struct{}
		closeOnce sync.Once
	}
)

// Renderer implements the hud.Renderer interface.
var _ hud.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer that writes to w.
func (cfg Config) NewRenderer(w io.Writer) *Renderer {
	tick := cfg.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	r := Renderer{
		w:    w,
		tick: tick,
	}
	return &r
}

// Open starts a spinner with the status as its description.
func (r *Renderer) Open(id uuid.UUID, status string) hud.Window {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(status),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(r.tick/2),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
	w := window{
		bar:      bar,
		stopC:    make(chan struct{}),
		stoppedC: make(chan struct{}),
	}
	go w.spin(r.tick)
	return &w
}

// spin advances the spinner until the window is closed.
func (w *window) spin(tick time.Duration) {
	defer close(w.stoppedC)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-w.stopC:
			return
		case <-ticker.C:
			w.bar.Add(1)
		}
	}
}

// SetStatus changes the description next to the spinner.
func (w *window) SetStatus(status string) {
	w.bar.Describe(status)
}

// FadeIn does nothing: terminals cannot change the opacity of text.
func (w *window) FadeIn(d time.Duration) {
	// NOOP
}

// FadeOut keeps the spinner for the duration before calling done.
func (w *window) FadeOut(d time.Duration, done func()) {
	time.AfterFunc(d, done)
}

// Close stops the spinner and clears it from the terminal.
func (w *window) Close() {
	w.closeOnce.Do(func() {
		close(w.stopC)
		<-w.stoppedC
		w.bar.Finish()
	})
}
