//go:build js && wasm

// Package main runs the demo webpage: a tap cycles the background color while the channels load behind an overlay.
package main

import (
	"context"
	"os"
	"sync"
	"syscall/js"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/multi"
	"github.com/apex/log/handlers/text"
	"github.com/gspinelli/gskit/ui"
	uilog "github.com/gspinelli/gskit/ui/log"
)

// main initializes the wasm code for the web dom and runs as long as the browser is open.
func main() {
	ctx := context.Background()
	ctx, cancelFunc := context.WithCancel(ctx)
	var wg sync.WaitGroup
	dom := ui.NewDOM(js.Global())
	logPanel := uilog.New(dom, ".log>.scroll")
	logPanel.InitDom(ctx, &wg)
	log.SetHandler(multi.New(text.New(os.Stdout), logPanel))
	log.SetLevel(log.DebugLevel)
	f := flags{
		dom:         dom,
		log:         log.Log,
		httpTimeout: 10 * time.Second,
	}
	if err := f.initDom(ctx, &wg); err != nil {
		log.WithError(err).Error("initializing page")
		cancelFunc()
		return
	}
	initBeforeUnloadFn(cancelFunc, &wg)
	wg.Wait() // BLOCKING
}

// initBeforeUnloadFn registers a function to cancel the context when the browser is about to close.
// This should trigger other dom functions to release.
func initBeforeUnloadFn(cancelFunc context.CancelFunc, wg *sync.WaitGroup) {
	wg.Add(1)
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cancelFunc()
		fn.Release()
		wg.Done()
		return nil
	})
	global := js.Global()
	global.Call("addEventListener", "beforeunload", fn)
}
