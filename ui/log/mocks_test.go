//go:build js && wasm

package log

import (
	"context"
	"sync"
	"syscall/js"
)

type mockDOM struct {
	QuerySelectorFunc func(query string) js.Value
	CreateElementFunc func(tagName string) js.Value
	NewJsFuncFunc     func(fn func()) js.Func
	RegisterFuncsFunc func(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func)
}

func (m *mockDOM) QuerySelector(query string) js.Value {
	return m.QuerySelectorFunc(query)
}

func (m *mockDOM) CreateElement(tagName string) js.Value {
	return m.CreateElementFunc(tagName)
}

func (m *mockDOM) NewJsFunc(fn func()) js.Func {
	return m.NewJsFuncFunc(fn)
}

func (m *mockDOM) RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func) {
	m.RegisterFuncsFunc(ctx, wg, parentName, jsFuncs)
}
