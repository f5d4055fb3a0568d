//go:build js && wasm

package web

import (
	"syscall/js"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

// testDOM records the elements it creates, the styles set on them, and the timeouts.
type testDOM struct {
	jsFuncs  []js.Func
	children map[string][]string
	styles   map[string]map[string]string
	removed  map[string]int
	timeouts []time.Duration
	pending  []func()
	created  int
}

func newTestDOM() *testDOM {
	d := testDOM{
		children: make(map[string][]string),
		styles:   make(map[string]map[string]string),
		removed:  make(map[string]int),
	}
	return &d
}

func (d *testDOM) release() {
	for _, f := range d.jsFuncs {
		f.Release()
	}
}

func (d *testDOM) newElement(name string) js.Value {
	element := js.Global().Get("Object").New()
	element.Set("name", name)
	appendChild := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		d.children[name] = append(d.children[name], args[0].Get("name").String())
		return nil
	})
	remove := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		d.removed[name]++
		return nil
	})
	d.jsFuncs = append(d.jsFuncs, appendChild, remove)
	element.Set("appendChild", appendChild)
	element.Set("remove", remove)
	element.Set("style", js.Global().Get("Object").New())
	return element
}

func (d *testDOM) dom() DOM {
	body := d.newElement("body")
	return &mockDOM{
		BodyFunc: func() js.Value {
			return body
		},
		CreateElementFunc: func(tagName string) js.Value {
			d.created++
			return d.newElement(tagName)
		},
		SetStyleFunc: func(element js.Value, property, value string) {
			name := element.Get("name").String()
			if _, ok := d.styles[name]; !ok {
				d.styles[name] = make(map[string]string)
			}
			d.styles[name][property] = value
		},
		SetTimeoutFunc: func(fn func(), delay time.Duration) {
			d.timeouts = append(d.timeouts, delay)
			d.pending = append(d.pending, fn)
		},
	}
}

func TestOpen(t *testing.T) {
	d := newTestDOM()
	defer d.release()
	r := NewRenderer(d.dom())
	id := uuid.MustParse("5b8e3cb8-73a4-4d1d-9a37-7a7c2d8c9f7e")
	r.Open(id, "Loading")
	if want, got := []string{"div"}, d.children["body"]; !cmp.Equal(want, got) {
		t.Errorf("body children: wanted %v, got %v", want, got)
	}
	if want, got := []string{"progress", "span"}, d.children["div"]; !cmp.Equal(want, got) {
		t.Errorf("overlay children: wanted %v, got %v", want, got)
	}
	if want, got := "fixed", d.styles["div"]["position"]; want != got {
		t.Errorf("overlay position: wanted %v, got %v", want, got)
	}
	if want, got := "block", d.styles["span"]["display"]; want != got {
		t.Errorf("label display: wanted %v, got %v", want, got)
	}
}

func TestSetStatus(t *testing.T) {
	setStatusTests := []struct {
		status      string
		wantDisplay string
	}{
		{"", "none"},
		{"Saving", "block"},
	}
	for i, test := range setStatusTests {
		d := newTestDOM()
		r := NewRenderer(d.dom())
		w := r.Open(uuid.New(), "initial")
		w.SetStatus(test.status)
		if got := d.styles["span"]["display"]; test.wantDisplay != got {
			t.Errorf("Test %v: label display: wanted %v, got %v", i, test.wantDisplay, got)
		}
		d.release()
	}
}

func TestFade(t *testing.T) {
	d := newTestDOM()
	defer d.release()
	r := NewRenderer(d.dom())
	w := r.Open(uuid.New(), "")
	w.FadeIn(200 * time.Millisecond)
	if want, got := "1", d.styles["div"]["opacity"]; want != got {
		t.Errorf("opacity after fade in: wanted %v, got %v", want, got)
	}
	if want, got := "opacity 0.2s", d.styles["div"]["transition"]; want != got {
		t.Errorf("transition after fade in: wanted %v, got %v", want, got)
	}
	done := false
	w.FadeOut(250*time.Millisecond, func() { done = true })
	switch {
	case d.styles["div"]["opacity"] != "0":
		t.Errorf("wanted opacity 0 after fade out, got %v", d.styles["div"]["opacity"])
	case d.styles["div"]["transition"] != "opacity 0.25s":
		t.Errorf("wanted fade out transition, got %v", d.styles["div"]["transition"])
	case len(d.pending) != 1:
		t.Fatalf("wanted one timeout, got %v", len(d.pending))
	case d.timeouts[0] != 250*time.Millisecond:
		t.Errorf("timeout: wanted 250ms, got %v", d.timeouts[0])
	case done:
		t.Error("did not want done called before the timeout")
	}
	d.pending[0]()
	if !done {
		t.Error("wanted done called after the timeout")
	}
}

func TestClose(t *testing.T) {
	d := newTestDOM()
	defer d.release()
	r := NewRenderer(d.dom())
	w := r.Open(uuid.New(), "")
	w.Close()
	w.Close()
	if want, got := 1, d.removed["div"]; want != got {
		t.Errorf("wanted overlay removed %v time, got %v", want, got)
	}
}
