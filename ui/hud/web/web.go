//go:build js && wasm

// Package web renders the overlay as a translucent layer covering the page.
package web

import (
	"sync"
	"syscall/js"
	"time"

	"github.com/google/uuid"
	"github.com/gspinelli/gskit/ui"
	"github.com/gspinelli/gskit/ui/hud"
)

type (
	// Renderer mounts overlay windows onto the body of the document.
	Renderer struct {
		dom DOM
	}

	// DOM is the part of the document the renderer changes.
	DOM interface {
		Body() js.Value
		CreateElement(tagName string) js.Value
		SetStyle(element js.Value, property, value string)
		SetTimeout(fn func(), d time.Duration)
	}

	// window is an overlay element mounted on the body.
	window struct {
		dom       DOM
		element   js.Value
		label     js.Value
		closeOnce sync.Once
	}
)

// Renderer implements the hud.Renderer interface.
var _ hud.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer that uses the DOM.
func NewRenderer(dom DOM) *Renderer {
	r := Renderer{
		dom: dom,
	}
	return &r
}

// Open mounts an overlay that blocks interaction with the page.
func (r *Renderer) Open(id uuid.UUID, status string) hud.Window {
	element := r.dom.CreateElement("div")
	element.Set("id", "hud-"+id.String())
	element.Set("className", "hud")
	for _, s := range [][2]string{
		{"position", "fixed"},
		{"inset", "0"},
		{"z-index", "1000"},
		{"display", "flex"},
		{"flex-direction", "column"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"background-color", "rgba(0, 0, 0, 0.4)"},
	} {
		r.dom.SetStyle(element, s[0], s[1])
	}
	spinner := r.dom.CreateElement("progress")
	label := r.dom.CreateElement("span")
	r.dom.SetStyle(label, "color", "white")
	element.Call("appendChild", spinner)
	element.Call("appendChild", label)
	w := window{
		dom:     r.dom,
		element: element,
		label:   label,
	}
	w.SetStatus(status)
	r.dom.Body().Call("appendChild", element)
	return &w
}

// SetStatus shows the text under the spinner, hiding the label if the text is empty.
func (w *window) SetStatus(status string) {
	w.label.Set("textContent", status)
	display := "block"
	if len(status) == 0 {
		display = "none"
	}
	w.dom.SetStyle(w.label, "display", display)
}

// FadeIn transitions the opacity of the overlay to one.
func (w *window) FadeIn(d time.Duration) {
	w.dom.SetStyle(w.element, "opacity", "0")
	w.element.Get("offsetWidth") // reflow so the transition starts from transparent
	w.dom.SetStyle(w.element, "transition", "opacity "+ui.CSSDuration(d))
	w.dom.SetStyle(w.element, "opacity", "1")
}

// FadeOut transitions the opacity of the overlay to zero, calling done after the transition.
func (w *window) FadeOut(d time.Duration, done func()) {
	w.dom.SetStyle(w.element, "transition", "opacity "+ui.CSSDuration(d))
	w.dom.SetStyle(w.element, "opacity", "0")
	w.dom.SetTimeout(done, d)
}

// Close removes the overlay from the document.
func (w *window) Close() {
	w.closeOnce.Do(func() {
		w.element.Call("remove")
	})
}
