package backend

import (
	"context"
	"errors"
)

type (
	// Dispatcher sends requests to servers.
	// Each call makes at most one network call and has exactly one outcome:
	// the raw, non-empty response body or an error.
	Dispatcher interface {
		// Dispatch sends the request.
		Dispatch(ctx context.Context, req Request) ([]byte, error)
		// DispatchWithHeader sends the request with an additional header that the headers of the request can override.
		DispatchWithHeader(ctx context.Context, h Header, req Request) ([]byte, error)
	}

	// Queue runs functions on a single, ui-safe goroutine.
	Queue interface {
		// Post schedules the function to be run.  It must not block.
		Post(fn func())
	}
)

var (
	// errNilDispatcher is reported when no Dispatcher is provided.
	errNilDispatcher = errors.New("dispatcher required")
	// errNilQueue is reported when no Queue is provided to run callbacks on.
	errNilQueue = errors.New("queue required")
)

// Dispatch sends the request asynchronously, calling exactly one of the callbacks exactly once.
// The callbacks are run on the goroutine of the dispatch, not on a Queue.  Nil callbacks are skipped.
func Dispatch(ctx context.Context, d Dispatcher, req Request, onSuccess func([]byte), onError func(error)) {
	dispatchAsync(d, onSuccess, onError, func() ([]byte, error) {
		return d.Dispatch(ctx, req)
	})
}

// DispatchWithHeader is Dispatch, sending the additional header with the request.
func DispatchWithHeader(ctx context.Context, d Dispatcher, h Header, req Request, onSuccess func([]byte), onError func(error)) {
	dispatchAsync(d, onSuccess, onError, func() ([]byte, error) {
		return d.DispatchWithHeader(ctx, h, req)
	})
}

func dispatchAsync(d Dispatcher, onSuccess func([]byte), onError func(error), dispatch func() ([]byte, error)) {
	if onSuccess == nil {
		onSuccess = func([]byte) {}
	}
	if onError == nil {
		onError = func(error) {}
	}
	go func() {
		if d == nil {
			onError(errNilDispatcher)
			return
		}
		b, err := dispatch()
		if err != nil {
			onError(err)
			return
		}
		onSuccess(b)
	}()
}
