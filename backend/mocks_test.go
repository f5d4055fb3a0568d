package backend

import (
	"context"
	"sync"
)

type mockDispatcher struct {
	DispatchFunc           func(ctx context.Context, req Request) ([]byte, error)
	DispatchWithHeaderFunc func(ctx context.Context, h Header, req Request) ([]byte, error)
}

func (m mockDispatcher) Dispatch(ctx context.Context, req Request) ([]byte, error) {
	return m.DispatchFunc(ctx, req)
}

func (m mockDispatcher) DispatchWithHeader(ctx context.Context, h Header, req Request) ([]byte, error) {
	return m.DispatchWithHeaderFunc(ctx, h, req)
}

// mockQueue records posted functions so tests can run them on the test goroutine.
type mockQueue struct {
	mu    sync.Mutex
	funcs []func()
	C     chan struct{}
}

func newMockQueue() *mockQueue {
	q := mockQueue{
		C: make(chan struct{}, 16),
	}
	return &q
}

func (q *mockQueue) Post(fn func()) {
	q.mu.Lock()
	q.funcs = append(q.funcs, fn)
	q.mu.Unlock()
	q.C <- struct{}{}
}

// runAll runs the posted functions in order, returning how many were run.
func (q *mockQueue) runAll() int {
	q.mu.Lock()
	funcs := q.funcs
	q.funcs = nil
	q.mu.Unlock()
	for _, fn := range funcs {
		fn()
	}
	return len(funcs)
}
