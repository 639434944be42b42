//go:build js && wasm

// Command site is the browser runtime of the CV and portfolio pages. It is
// compiled with GOOS=js GOARCH=wasm and loaded by the page shells.
package main

import (
	"context"
	"strings"
	"syscall/js"

	"go.uber.org/zap"

	"cv-folio/internal/adapter/content"
	"cv-folio/internal/dom"
	"cv-folio/internal/reveal"
	"cv-folio/internal/signal"
	"cv-folio/internal/usecase"
)

type languageSetter interface {
	SetLanguage(raw string) bool
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	document := js.Global().Get("document")
	doc, err := dom.Parse(strings.NewReader("<!DOCTYPE html>" + document.Get("documentElement").Get("outerHTML").String()))
	if err != nil {
		logger.Error("parse document", zap.Error(err))
		return
	}

	b := newBridge(document, logger)
	doc.OnCommit(b.apply)

	h := newBrowserHost()
	bus := signal.NewBus()
	b.forward(bus)

	reveal.New(doc, bus, newViewport(b), reveal.Options{Env: h, Log: logger})

	deps := usecase.Deps{Doc: doc, Storage: h, Env: h, Bus: bus, Log: logger}
	store := content.NewStore(js.Global().Get("location").Get("origin").String())
	ctx := context.Background()

	if doc.ByID(usecase.MountContact) != nil {
		engine := usecase.NewCVEngine(deps, store)
		b.onClick("[data-lang-toggle]", func(el js.Value) { setLanguage(engine, el) })
		engine.Bootstrap(ctx)
	} else {
		engine := usecase.NewPortfolioEngine(deps, store)
		b.onClick("[data-lang-toggle]", func(el js.Value) { setLanguage(engine, el) })
		b.onClick("[data-filter]", func(el js.Value) { engine.PressFilter(el.Get("dataset").Get("filter").String()) })
		engine.Bootstrap(ctx)
	}

	select {}
}

func setLanguage(e languageSetter, el js.Value) {
	lang := el.Get("dataset").Get("lang")
	if lang.Type() == js.TypeString {
		e.SetLanguage(lang.String())
	}
}
