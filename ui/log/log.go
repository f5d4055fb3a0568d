//go:build js && wasm

// Package log shows log entries in a panel on the page.
package log

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"syscall/js"

	"github.com/apex/log"
)

type (
	// Handler appends log entries to the scrolling panel of the page.
	Handler struct {
		dom   DOM
		query string
		mu    sync.Mutex
	}

	// DOM is the part of the document the Handler uses.
	DOM interface {
		QuerySelector(query string) js.Value
		CreateElement(tagName string) js.Value
		NewJsFunc(fn func()) js.Func
		RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func)
	}
)

// Handler implements the log.Handler interface.
var _ log.Handler = (*Handler)(nil)

// New creates a Handler that writes to the element selected by the query.
func New(dom DOM, query string) *Handler {
	h := Handler{
		dom:   dom,
		query: query,
	}
	return &h
}

// InitDom registers log dom functions.
func (h *Handler) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	jsFuncs := map[string]js.Func{
		"clear": h.dom.NewJsFunc(h.Clear),
	}
	h.dom.RegisterFuncs(ctx, wg, "log", jsFuncs)
}

// HandleLog adds the entry to the panel, styled by its level.  Entries are dropped if the page has no panel.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	panel := h.dom.QuerySelector(h.query)
	if panel.IsNull() || panel.IsUndefined() {
		return nil
	}
	item := h.dom.CreateElement("div")
	item.Set("className", e.Level.String())
	item.Set("textContent", format(e))
	panel.Call("appendChild", item)
	scrollHeight := panel.Get("scrollHeight")
	clientHeight := panel.Get("clientHeight")
	scrollTop := scrollHeight.Int() - clientHeight.Int()
	panel.Set("scrollTop", scrollTop)
	return nil
}

// Clear removes the entries from the panel.
func (h *Handler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	panel := h.dom.QuerySelector(h.query)
	if panel.IsNull() || panel.IsUndefined() {
		return
	}
	panel.Set("innerHTML", "")
}

// format writes the time, message, and sorted fields of the entry.
func format(e *log.Entry) string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("15:04:05"))
	sb.WriteString(" : ")
	sb.WriteString(e.Message)
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%v", name, e.Fields[name])
	}
	return sb.String()
}
