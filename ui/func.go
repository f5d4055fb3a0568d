//go:build js && wasm

package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"syscall/js"
)

// RegisterFuncs sets the function as fields on the parent.
// The parent object is created if it does not exist.
func (dom *DOM) RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func) {
	parent := dom.global.Get(parentName)
	if parent.IsUndefined() {
		parent = js.ValueOf(make(map[string]interface{}))
		dom.global.Set(parentName, parent)
	}
	for fnName, fn := range jsFuncs {
		parent.Set(fnName, fn)
	}
	wg.Add(1)
	go dom.releaseJsFuncsOnDone(ctx, wg, jsFuncs)
}

// AddEventListener calls the function whenever the target receives an event of the type.
// The listener is removed and released when the context is done.
func (dom *DOM) AddEventListener(ctx context.Context, wg *sync.WaitGroup, target js.Value, eventType string, fn func(event js.Value)) {
	jsFunc := dom.NewJsEventFunc(fn)
	target.Call("addEventListener", eventType, jsFunc)
	wg.Add(1)
	go func() {
		defer dom.AlertOnPanic()
		<-ctx.Done() // BLOCKING
		target.Call("removeEventListener", eventType, jsFunc)
		jsFunc.Release()
		wg.Done()
	}()
}

// NewJsFunc creates a new javascript function from the provided function.
func (dom *DOM) NewJsFunc(fn func()) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer dom.AlertOnPanic()
		fn()
		return nil
	})
}

// NewJsEventFunc creates a new javascript function from the provided function that processes an event and returns nothing.
func (dom *DOM) NewJsEventFunc(fn func(event js.Value)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer dom.AlertOnPanic()
		event := args[0]
		fn(event)
		return nil
	})
}

// releaseJsFuncsOnDone waits for the context to be done, then releases the funcs registered by RegisterFuncs.
func (dom *DOM) releaseJsFuncsOnDone(ctx context.Context, wg *sync.WaitGroup, jsFuncs map[string]js.Func) {
	defer dom.AlertOnPanic()
	<-ctx.Done() // BLOCKING
	for _, f := range jsFuncs {
		f.Release()
	}
	wg.Done()
}

// AlertOnPanic shows a recovered panic to the user before panicking again.
// Deferred first by goroutines that call into the page.
func (dom *DOM) AlertOnPanic() {
	if r := recover(); r != nil {
		err := dom.recoverError(r)
		f := []string{
			"FATAL: app shutting down",
			"See browser console for more information",
			"Message: " + err.Error(),
		}
		message := strings.Join(f, "\n")
		dom.alert(message)
		panic(err)
	}
}

// recoverError converts the recovery interface into a useful error.
// Panics if the interface is not an error or a string.
func (dom *DOM) recoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		panic([]interface{}{"unknown panic type", v, r})
	}
}
