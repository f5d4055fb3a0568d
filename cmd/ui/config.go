//go:build js && wasm

package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"syscall/js"
	"time"

	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/backend/xhr"
	"github.com/gspinelli/gskit/log"
	"github.com/gspinelli/gskit/ui"
	"github.com/gspinelli/gskit/ui/hud"
	"github.com/gspinelli/gskit/ui/hud/web"
	"github.com/gspinelli/gskit/ui/mainthread"
	"github.com/gspinelli/gskit/ui/palette"
)

type (
	// flags contains options for the the ui.
	flags struct {
		dom         *ui.DOM
		log         log.Logger
		httpTimeout time.Duration
	}

	// page links the components of the webpage.
	page struct {
		dom        *ui.DOM
		log        log.Logger
		loop       *mainthread.Loop
		hud        *hud.Controller
		dispatcher backend.Dispatcher
		palette    palette.Palette
	}
)

// channelsPath is the endpoint of the server that lists the channel names.
const channelsPath = "/channels"

// initDom creates the components of the page, and starts loading the channels.
func (f *flags) initDom(ctx context.Context, wg *sync.WaitGroup) error {
	p, err := f.newPage()
	if err != nil {
		return err
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := p.loop.Run(ctx); err != nil {
			p.log.Errorf("running main thread loop: %v", err)
		}
	}()
	p.initBackground(ctx, wg)
	p.loadChannels(ctx)
	return nil
}

// newPage creates the components of the page.
func (f *flags) newPage() (*page, error) {
	loopCfg := mainthread.Config{
		Log: f.log,
	}
	loop, err := loopCfg.NewLoop()
	if err != nil {
		return nil, err
	}
	hudCfg := hud.Config{
		Renderer: web.NewRenderer(f.dom),
		Log:      f.log,
	}
	hud, err := hudCfg.NewController()
	if err != nil {
		return nil, err
	}
	xhrCfg := xhr.Config{
		Timeout: f.httpTimeout,
	}
	dispatcher, err := xhrCfg.NewDispatcher(f.dom, f.log)
	if err != nil {
		return nil, err
	}
	p := page{
		dom:        f.dom,
		log:        f.log,
		loop:       loop,
		hud:        hud,
		dispatcher: dispatcher,
	}
	return &p, nil
}

// initBackground paints the body with the first color and cycles it when the page is tapped.
func (p *page) initBackground(ctx context.Context, wg *sync.WaitGroup) {
	body := p.dom.Body()
	p.dom.SetStyle(body, "background-color", p.palette.Current())
	p.dom.AddEventListener(ctx, wg, body, "click", func(event js.Value) {
		p.loop.Post(func() {
			p.dom.SetStyle(body, "background-color", p.palette.Next())
		})
	})
}

// loadChannels requests the channel names, showing the overlay until they are received.
func (p *page) loadChannels(ctx context.Context) {
	channels := channelsRequest(p.dom.Origin())
	p.hud.Show("Loading channels")
	channels.Execute(ctx, p.dispatcher, p.loop,
		func(names []string) {
			p.hud.Dismiss(true)
			p.log.Infof("channels: %v", strings.Join(names, ", "))
		},
		func(err error) {
			p.hud.Dismiss(true)
			p.log.Errorf("loading channels: %v", err)
		},
	)
}

// channelsRequest creates the request for the names of the channels on the server at the origin.
func channelsRequest(origin string) backend.Typed[[]string] {
	path := fmt.Sprintf("%s%s", strings.TrimSuffix(origin, "/"), channelsPath)
	req := backend.NewRequest(path)
	return backend.NewTyped[[]string](req)
}
