//go:build js && wasm

package main

import (
	"sync"
	"syscall/js"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cv-folio/internal/dom"
	"cv-folio/internal/signal"
)

// bridge mirrors committed tree changes into the live page.
type bridge struct {
	document js.Value
	log      *zap.Logger
	funcs    []js.Func
}

func newBridge(document js.Value, log *zap.Logger) *bridge {
	return &bridge{document: document, log: log}
}

// live finds the page element matching n.
func (b *bridge) live(n *html.Node) (js.Value, bool) {
	id, path := dom.Locate(n)
	var el js.Value
	if id != "" {
		el = b.document.Call("getElementById", id)
	} else {
		el = b.document.Get("documentElement")
	}
	for _, i := range path {
		if el.IsNull() || el.IsUndefined() {
			return js.Null(), false
		}
		el = el.Get("children").Index(i)
	}
	if el.IsNull() || el.IsUndefined() {
		return js.Null(), false
	}
	return el, true
}

func (b *bridge) apply(changes []dom.Change) {
	for _, c := range changes {
		el, ok := b.live(c.Node)
		if !ok {
			id, path := dom.Locate(c.Node)
			b.log.Debug("no live element for change", zap.String("id", id), zap.Ints("path", path))
			continue
		}
		if c.Content {
			el.Set("innerHTML", dom.InnerHTML(c.Node))
		}
		syncAttrs(el, c.Node)
	}
}

func syncAttrs(el js.Value, n *html.Node) {
	want := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		if a.Namespace == "" {
			want[a.Key] = a.Val
		}
	}
	names := el.Call("getAttributeNames")
	for i := 0; i < names.Length(); i++ {
		name := names.Index(i).String()
		if _, ok := want[name]; !ok {
			el.Call("removeAttribute", name)
		}
	}
	for k, v := range want {
		if cur := el.Call("getAttribute", k); cur.Type() != js.TypeString || cur.String() != v {
			el.Call("setAttribute", k, v)
		}
	}
}

// forward re-dispatches bus events as DOM CustomEvents on document.
func (b *bridge) forward(bus *signal.Bus) {
	dispatch := func(ev signal.Event) {
		detail := map[string]interface{}{"source": ev.Source, "lang": string(ev.Lang)}
		init := map[string]interface{}{"detail": detail}
		b.document.Call("dispatchEvent", js.Global().Get("CustomEvent").New(string(ev.Name), init))
	}
	bus.Subscribe(signal.RenderComplete, dispatch)
	bus.Subscribe(signal.LanguageChanged, dispatch)
}

// onClick delegates clicks on elements matching selector to fn. fn runs on
// its own goroutine so the JS event loop is never blocked.
func (b *bridge) onClick(selector string, fn func(el js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		target := args[0].Get("target")
		if target.Get("closest").Type() != js.TypeFunction {
			return nil
		}
		el := target.Call("closest", selector)
		if el.IsNull() {
			return nil
		}
		args[0].Call("preventDefault")
		go fn(el)
		return nil
	})
	b.funcs = append(b.funcs, f)
	b.document.Call("addEventListener", "click", f)
}

type watched struct {
	el      js.Value
	onEnter func()
}

// viewport implements reveal.Viewport with an IntersectionObserver.
type viewport struct {
	b        *bridge
	observer js.Value
	cb       js.Func

	mu      sync.Mutex
	entries []watched
}

func newViewport(b *bridge) *viewport {
	v := &viewport{b: b}
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.Type() != js.TypeFunction {
		return v
	}
	v.cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		list := args[0]
		for i := 0; i < list.Length(); i++ {
			entry := list.Index(i)
			if !entry.Get("isIntersecting").Bool() {
				continue
			}
			target := entry.Get("target")
			v.observer.Call("unobserve", target)
			if fn := v.take(target); fn != nil {
				go fn()
			}
		}
		return nil
	})
	v.observer = ctor.New(v.cb, map[string]interface{}{"rootMargin": "0px 0px -10% 0px", "threshold": 0.1})
	return v
}

func (v *viewport) take(target js.Value) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, w := range v.entries {
		if w.el.Equal(target) {
			v.entries = append(v.entries[:i], v.entries[i+1:]...)
			return w.onEnter
		}
	}
	return nil
}

func (v *viewport) Watch(n *html.Node, onEnter func()) {
	el, ok := v.b.live(n)
	if !ok {
		return
	}
	if v.observer.IsUndefined() {
		go onEnter()
		return
	}
	v.mu.Lock()
	v.entries = append(v.entries, watched{el: el, onEnter: onEnter})
	v.mu.Unlock()
	v.observer.Call("observe", el)
}

func (v *viewport) Reset() {
	if !v.observer.IsUndefined() {
		v.observer.Call("disconnect")
	}
	v.mu.Lock()
	v.entries = nil
	v.mu.Unlock()
}
