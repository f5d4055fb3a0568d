package backend

import (
	"context"
	"encoding/json"
)

// Typed is a Request with the shape its json response is decoded into.
type Typed[R any] struct {
	Request Request
}

// NewTyped binds the request to the response type.
func NewTyped[R any](req Request) Typed[R] {
	return Typed[R]{
		Request: req,
	}
}

// Do dispatches the request and decodes the response body.
// This function either returns an error or a decoded response.
func (t Typed[R]) Do(ctx context.Context, d Dispatcher) (R, error) {
	var response R
	if d == nil {
		return response, errNilDispatcher
	}
	b, err := d.Dispatch(ctx, t.Request)
	if err != nil {
		return response, err
	}
	if err := json.Unmarshal(b, &response); err != nil {
		var zero R
		return zero, &DecodingError{Err: err}
	}
	return response, nil
}

// Execute runs Do asynchronously.
// Exactly one of the callbacks is called, once, on the queue.
// Without a queue, onError is called with an error before Execute returns and nothing is dispatched.
// Nil callbacks are skipped.
func (t Typed[R]) Execute(ctx context.Context, d Dispatcher, q Queue, onSuccess func(R), onError func(error)) {
	if onSuccess == nil {
		onSuccess = func(R) {}
	}
	if onError == nil {
		onError = func(error) {}
	}
	if q == nil {
		onError(errNilQueue)
		return
	}
	go func() {
		response, err := t.Do(ctx, d)
		switch {
		case err != nil:
			q.Post(func() {
				onError(err)
			})
		default:
			q.Post(func() {
				onSuccess(response)
			})
		}
	}()
}
