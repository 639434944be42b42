//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
)

// browserHost backs host.Storage and host.Env with the window object.
type browserHost struct {
	window js.Value
}

func newBrowserHost() *browserHost {
	return &browserHost{window: js.Global()}
}

// call runs fn and turns a thrown JS exception into an error. localStorage
// throws in private modes and sandboxed frames.
func call(fn func() js.Value) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("js: %v", r)
		}
	}()
	return fn(), nil
}

func (b *browserHost) Get(key string) (string, bool) {
	v, err := call(func() js.Value { return b.window.Get("localStorage").Call("getItem", key) })
	if err != nil || v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}

func (b *browserHost) Set(key, value string) error {
	_, err := call(func() js.Value { return b.window.Get("localStorage").Call("setItem", key, value) })
	return err
}

func (b *browserHost) Query(key string) string {
	params := js.Global().Get("URLSearchParams").New(b.window.Get("location").Get("search"))
	v := params.Call("get", key)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (b *browserHost) NavigatorLanguage() string {
	v := b.window.Get("navigator").Get("language")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (b *browserHost) PrefersReducedMotion() bool {
	mm := b.window.Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return b.window.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
}
