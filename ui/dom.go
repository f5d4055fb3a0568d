//go:build js && wasm

// Package ui contains the browser bindings of the toolkit.
// It compiles to webassembly.
package ui

import (
	"strconv"
	"syscall/js"
	"time"
)

// DOM interacts with the browser document through the global javascript object.
type DOM struct {
	global js.Value
}

// NewDOM creates a DOM for the global javascript object, usually js.Global().
func NewDOM(global js.Value) *DOM {
	dom := DOM{
		global: global,
	}
	return &dom
}

// document is the root of the page.
func (dom *DOM) document() js.Value {
	return dom.global.Get("document")
}

// QuerySelector returns the first element returned by the query from root of the document.
func (dom *DOM) QuerySelector(query string) js.Value {
	return dom.document().Call("querySelector", query)
}

// Body returns the body element of the document.
func (dom *DOM) Body() js.Value {
	return dom.document().Get("body")
}

// CreateElement creates a detached element with the tag name.
func (dom *DOM) CreateElement(tagName string) js.Value {
	return dom.document().Call("createElement", tagName)
}

// SetStyle sets a css property of the element.
func (dom *DOM) SetStyle(element js.Value, property, value string) {
	style := element.Get("style")
	style.Call("setProperty", property, value)
}

// Origin returns the scheme, host, and port of the page, such as https://example.com:8443.
func (dom *DOM) Origin() string {
	location := dom.global.Get("location")
	origin := location.Get("origin")
	return origin.String()
}

// SetTimeout calls the function after the duration.
// The javascript function is released after it is called.
func (dom *DOM) SetTimeout(fn func(), d time.Duration) {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer dom.AlertOnPanic()
		jsFunc.Release()
		fn()
		return nil
	})
	dom.global.Call("setTimeout", jsFunc, d.Milliseconds())
}

// CSSDuration formats the duration as css seconds.
func CSSDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// NewXHR creates a new XML HTTP Request.
func (dom *DOM) NewXHR() js.Value {
	xhr := dom.global.Get("XMLHttpRequest")
	return xhr.New()
}

// alert shows a popup in the browser.
func (dom *DOM) alert(message string) {
	dom.global.Call("alert", message)
}
