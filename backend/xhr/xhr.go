//go:build js && wasm

// Package xhr dispatches requests using the XMLHttpRequest of the browser.
package xhr

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
	"time"

	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/log"
)

type (
	// Dispatcher sends requests with XML HTTP Requests.
	// The request and response bodies are not streamed.
	// Dispatch blocks, so it must not be called on the goroutine of a javascript callback.
	Dispatcher struct {
		dom     DOM
		log     log.Logger
		timeout time.Duration
	}

	// Config contains the options of a Dispatcher.
	Config struct {
		// Timeout is the amount of time a request can take before being considered timed out.
		// Zero means no timeout beyond the browser defaults.
		Timeout time.Duration
	}

	// DOM creates the browser objects the Dispatcher uses.
	DOM interface {
		NewXHR() js.Value
		NewJsEventFunc(fn func(event js.Value)) js.Func
	}

	// xhrResult is the outcome of the request, reported by the event handler.
	xhrResult struct {
		code int
		body string
		err  error
	}
)

// Dispatcher implements the backend.Dispatcher interface.
var _ backend.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher from the config.
func (cfg Config) NewDispatcher(dom DOM, log log.Logger) (*Dispatcher, error) {
	switch {
	case dom == nil:
		return nil, fmt.Errorf("creating xhr dispatcher: dom required")
	case log == nil:
		return nil, fmt.Errorf("creating xhr dispatcher: log required")
	case cfg.Timeout < 0:
		return nil, fmt.Errorf("creating xhr dispatcher: non-negative timeout required")
	}
	d := Dispatcher{
		dom:     dom,
		log:     log,
		timeout: cfg.Timeout,
	}
	return &d, nil
}

// Dispatch sends the request.
func (d *Dispatcher) Dispatch(ctx context.Context, req backend.Request) ([]byte, error) {
	return d.dispatch(ctx, nil, req)
}

// DispatchWithHeader sends the request with the additional header.
func (d *Dispatcher) DispatchWithHeader(ctx context.Context, h backend.Header, req backend.Request) ([]byte, error) {
	return d.dispatch(ctx, &h, req)
}

// dispatch makes the XML HTTP Request, waiting for one of its terminal events.
func (d *Dispatcher) dispatch(ctx context.Context, extra *backend.Header, req backend.Request) ([]byte, error) {
	o, err := req.Outgoing(extra)
	if err != nil {
		return nil, err
	}
	xhr := d.dom.NewXHR()
	xhr.Call("open", o.Method, o.URL)
	xhr.Set("timeout", d.timeout.Milliseconds())
	for k, v := range o.Headers {
		xhr.Call("setRequestHeader", k, v)
	}
	resultC := make(chan xhrResult, 1)
	eventHandler := d.dom.NewJsEventFunc(handleEvent(xhr, resultC))
	defer eventHandler.Release()
	for _, event := range []string{"load", "timeout", "abort", "error"} {
		xhr.Call("addEventListener", event, eventHandler)
	}
	d.log.Debugf("%v %v", o.Method, o.URL)
	var body interface{}
	if o.Body != nil {
		body = string(o.Body)
	}
	xhr.Call("send", body)
	var result xhrResult
	select {
	case result = <-resultC:
	case <-ctx.Done():
		xhr.Call("abort")
		return nil, &backend.TransportError{Err: ctx.Err()}
	}
	if result.err != nil {
		return nil, &backend.TransportError{Err: result.err}
	}
	d.log.Debugf("%v %v: status %v, %d bytes", o.Method, o.URL, result.code, len(result.body))
	if len(result.body) == 0 {
		return nil, backend.ErrNoData
	}
	return []byte(result.body), nil
}

// handleEvent handles an event for the XHR.  Only the first event is reported.
func handleEvent(xhr js.Value, resultC chan<- xhrResult) func(event js.Value) {
	return func(event js.Value) {
		var r xhrResult
		eventType := event.Get("type").String()
		switch eventType {
		case "load":
			r.code = xhr.Get("status").Int()
			r.body = xhr.Get("response").String()
		default:
			r.err = errors.New("received event type: " + eventType)
		}
		select {
		case resultC <- r:
		default:
		}
	}
}
