//go:build js && wasm

package web

import (
	"syscall/js"
	"time"
)

type mockDOM struct {
	BodyFunc          func() js.Value
	CreateElementFunc func(tagName string) js.Value
	SetStyleFunc      func(element js.Value, property, value string)
	SetTimeoutFunc    func(fn func(), d time.Duration)
}

func (m *mockDOM) Body() js.Value {
	return m.BodyFunc()
}

func (m *mockDOM) CreateElement(tagName string) js.Value {
	return m.CreateElementFunc(tagName)
}

func (m *mockDOM) SetStyle(element js.Value, property, value string) {
	m.SetStyleFunc(element, property, value)
}

func (m *mockDOM) SetTimeout(fn func(), d time.Duration) {
	m.SetTimeoutFunc(fn, d)
}
