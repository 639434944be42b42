package usecase

import (
	"go.uber.org/zap"

	"cv-folio/internal/dom"
	"cv-folio/internal/host"
	"cv-folio/internal/i18n"
	"cv-folio/internal/signal"
)

// Deps are the collaborators shared by both render engines.
type Deps struct {
	Doc     *dom.Document
	Storage host.Storage
	Env     host.Env
	Bus     *signal.Bus
	Log     *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Bus == nil {
		d.Bus = signal.NewBus()
	}
	return d
}

// resolveLanguage reads the initial language from the query string, the
// persisted preference and the browser, in that order.
func resolveLanguage(s host.Storage, env host.Env) i18n.Lang {
	persisted, _ := s.Get(i18n.StorageKey)
	return i18n.ResolveInitial(i18n.Sources{
		Query:     env.Query("lang"),
		Persisted: persisted,
		Browser:   env.NavigatorLanguage(),
	})
}

func persistLanguage(s host.Storage, lang i18n.Lang, log *zap.Logger) {
	if err := s.Set(i18n.StorageKey, string(lang)); err != nil {
		log.Warn("persist language", zap.String("lang", string(lang)), zap.Error(err))
	}
}

// applyLanguageChrome sets <html lang> and the pressed/labelled state of
// every language toggle on the page.
func applyLanguageChrome(doc *dom.Document, lang i18n.Lang) {
	doc.SetLang(string(lang))
	for _, n := range doc.Find("[data-lang-toggle]") {
		code, _ := dom.GetAttr(n, "data-lang")
		pressed := "false"
		if code == string(lang) {
			pressed = "true"
		}
		dom.SetAttr(n, "aria-pressed", pressed)
		dom.SetAttr(n, "aria-label", i18n.T(lang, "toggle."+code))
		doc.Touch(n)
	}
}

// applyHeadings translates every static element tagged with data-i18n.
func applyHeadings(doc *dom.Document, lang i18n.Lang) {
	for _, n := range doc.Find("[data-i18n]") {
		key, _ := dom.GetAttr(n, "data-i18n")
		if key == "" {
			continue
		}
		dom.SetText(n, i18n.T(lang, key))
		doc.TouchContent(n)
	}
}
