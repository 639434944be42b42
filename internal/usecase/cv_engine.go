package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cv-folio/internal/i18n"
	"cv-folio/internal/model"
	"cv-folio/internal/signal"
)

// CVLoader fetches the CV document.
type CVLoader interface {
	LoadCV(ctx context.Context) (*model.CV, error)
}

// CVState is the CV page's application state. Failed marks a bootstrap
// whose fetch did not succeed.
type CVState struct {
	CV     *model.CV
	Lang   i18n.Lang
	Failed bool
}

// Mount node ids of the CV page, in render order.
const (
	MountContact        = "cv-contact"
	MountSummary        = "cv-summary"
	MountExperience     = "cv-experience"
	MountEducation      = "cv-education"
	MountSkills         = "cv-skills"
	MountLanguages      = "cv-languages"
	MountCertifications = "cv-certifications"
	MountProjects       = "cv-projects"

	// HeaderID is rendered by the contact section; its presence means the
	// first render finished.
	HeaderID = "cv-name"
)

type cvSection struct {
	mount  string
	render func(CVState) []*html.Node
}

var cvSections = []cvSection{
	{MountContact, renderContact},
	{MountSummary, renderSummary},
	{MountExperience, renderExperience},
	{MountEducation, renderEducation},
	{MountSkills, renderSkills},
	{MountLanguages, renderLanguages},
	{MountCertifications, renderCertifications},
	{MountProjects, renderProjects},
}

// CVEngine renders the CV record into the CV page and re-renders it on
// every language switch.
type CVEngine struct {
	deps   Deps
	loader CVLoader

	mu    sync.Mutex
	state CVState
}

func NewCVEngine(deps Deps, loader CVLoader) *CVEngine {
	return &CVEngine{deps: deps.withDefaults(), loader: loader, state: CVState{Lang: i18n.Default}}
}

// State returns a copy of the current state.
func (e *CVEngine) State() CVState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Bootstrap resolves the language, paints the language chrome before any
// data exists, fetches the CV once and renders it. A failed fetch is logged
// and shown inline; it is never returned.
func (e *CVEngine) Bootstrap(ctx context.Context) {
	doc := e.deps.Doc
	lang := resolveLanguage(e.deps.Storage, e.deps.Env)

	e.mu.Lock()
	e.state.Lang = lang
	doc.Update(func() {
		applyLanguageChrome(doc, lang)
		applyHeadings(doc, lang)
		doc.Commit()
	})
	e.mu.Unlock()

	cv, err := e.loader.LoadCV(ctx)

	e.mu.Lock()
	if err != nil {
		e.deps.Log.Error("cv bootstrap failed", zap.String("lang", string(e.state.Lang)), zap.Error(err))
		e.state.Failed = true
		e.RenderAll(e.state)
		e.mu.Unlock()
		return
	}
	e.state.CV = cv
	state := e.state
	e.RenderAll(state)
	e.mu.Unlock()

	e.deps.Log.Debug("cv rendered", zap.String("lang", string(state.Lang)))
	e.deps.Bus.Emit(signal.Event{Name: signal.RenderComplete, Source: "cv", Lang: state.Lang})
}

// RenderAll rebuilds every CV mount node from s and commits. Each section
// replaces its mount's children; nothing is appended to previous output.
func (e *CVEngine) RenderAll(s CVState) {
	doc := e.deps.Doc
	doc.Update(func() {
		e.renderAll(s)
		doc.Commit()
	})
}

func (e *CVEngine) renderAll(s CVState) {
	doc := e.deps.Doc
	switch {
	case s.CV != nil:
		for _, sec := range cvSections {
			doc.Mount(sec.mount, sec.render(s)...)
		}
		doc.SetTitle(i18n.Tf(s.Lang, "cv.page.title", s.CV.Meta.Name))
		doc.SetMeta("description", i18n.Tf(s.Lang, "cv.page.description", s.CV.Meta.Name))
	case s.Failed:
		renderCVError(e, s.Lang)
	}
	applyHeadings(doc, s.Lang)
}

// SetLanguage switches the active language. Unsupported codes are ignored
// and false is returned. A switch that arrives before the record exists
// only updates the language chrome; RenderComplete waits for real content.
func (e *CVEngine) SetLanguage(raw string) bool {
	lang, ok := i18n.Normalize(raw)
	if !ok {
		return false
	}
	doc := e.deps.Doc

	e.mu.Lock()
	e.state.Lang = lang
	state := e.state
	persistLanguage(e.deps.Storage, lang, e.deps.Log)
	doc.Update(func() {
		applyLanguageChrome(doc, lang)
		e.renderAll(state)
		doc.Commit()
	})
	e.mu.Unlock()

	if state.CV != nil || state.Failed {
		e.deps.Bus.Emit(signal.Event{Name: signal.RenderComplete, Source: "cv", Lang: lang})
	}
	e.deps.Bus.Emit(signal.Event{Name: signal.LanguageChanged, Source: "cv", Lang: lang})
	return true
}

func renderCVError(e *CVEngine, lang i18n.Lang) {
	msg := errorMessage(lang)
	for _, id := range []string{MountSummary, MountContact, MountExperience} {
		if e.deps.Doc.Mount(id, msg) {
			return
		}
	}
}
