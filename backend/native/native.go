// Package native dispatches requests using the net/http package.
package native

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	net_http "net/http"
	"time"

	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/log"
)

type (
	// Dispatcher sends requests with a net/http Client.
	Dispatcher struct {
		client *net_http.Client
		log    log.Logger
	}

	// Config contains the options of a Dispatcher.
	Config struct {
		// Timeout limits the time of each request.  Zero means no timeout beyond the transport defaults.
		Timeout time.Duration
		// Transport makes the individual HTTP requests.  The default transport is used if it is nil.
		Transport net_http.RoundTripper
	}
)

// Dispatcher implements the backend.Dispatcher interface.
var _ backend.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher from the config.
func (cfg Config) NewDispatcher(log log.Logger) (*Dispatcher, error) {
	if err := cfg.validate(log); err != nil {
		return nil, fmt.Errorf("creating native dispatcher: validation: %w", err)
	}
	client := net_http.Client{
		Timeout:   cfg.Timeout,
		Transport: cfg.Transport,
	}
	d := Dispatcher{
		client: &client,
		log:    log,
	}
	return &d, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(log log.Logger) error {
	switch {
	case log == nil:
		return errors.New("log required")
	case cfg.Timeout < 0:
		return errors.New("non-negative timeout required")
	}
	return nil
}

// Dispatch sends the request.
func (d *Dispatcher) Dispatch(ctx context.Context, req backend.Request) ([]byte, error) {
	return d.dispatch(ctx, nil, req)
}

// DispatchWithHeader sends the request with the additional header.
func (d *Dispatcher) DispatchWithHeader(ctx context.Context, h backend.Header, req backend.Request) ([]byte, error) {
	return d.dispatch(ctx, &h, req)
}

// dispatch makes the http request, reading the whole response body.
func (d *Dispatcher) dispatch(ctx context.Context, extra *backend.Header, req backend.Request) ([]byte, error) {
	o, err := req.Outgoing(extra)
	if err != nil {
		return nil, err
	}
	var body io.Reader
	if o.Body != nil {
		body = bytes.NewReader(o.Body)
	}
	httpRequest, err := net_http.NewRequestWithContext(ctx, o.Method, o.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating go http request: %w", err)
	}
	for k, v := range o.Headers {
		httpRequest.Header.Set(k, v)
	}
	d.log.Debugf("%v %v", o.Method, o.URL)
	httpResponse, err := d.client.Do(httpRequest)
	if err != nil {
		return nil, &backend.TransportError{Err: err}
	}
	defer httpResponse.Body.Close()
	b, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, &backend.TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}
	d.log.Debugf("%v %v: status %v, %d bytes", o.Method, o.URL, httpResponse.StatusCode, len(b))
	if len(b) == 0 {
		return nil, backend.ErrNoData
	}
	return b, nil
}
