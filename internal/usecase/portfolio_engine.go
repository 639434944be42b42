package usecase

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cv-folio/internal/dom"
	"cv-folio/internal/i18n"
	"cv-folio/internal/model"
	"cv-folio/internal/signal"
)

// PortfolioLoader fetches the portfolio document.
type PortfolioLoader interface {
	LoadPortfolio(ctx context.Context) (*model.Portfolio, error)
}

const (
	// MountOverview holds the grid of case-study cards.
	MountOverview = "portfolio-grid"
	// MountDetail holds a single case study; its data-slug names which.
	MountDetail = "case-study"

	// DetailPage is the page that renders MountDetail.
	DetailPage = "case-study.html"

	// filterThreshold is the project count above which the filter bar appears.
	filterThreshold = 4
	filterAll       = "*"
)

// View is the render target found on the page.
type View int

const (
	ViewNone View = iota
	ViewOverview
	ViewDetail
)

// PortfolioState is the portfolio page's application state. Filter is the
// pressed filter toggle; it does not narrow the card list.
type PortfolioState struct {
	Portfolio *model.Portfolio
	Lang      i18n.Lang
	Filter    string
}

// PortfolioEngine renders the overview grid or a case-study detail page,
// whichever mount node the page carries.
type PortfolioEngine struct {
	deps   Deps
	loader PortfolioLoader

	mu    sync.Mutex
	state PortfolioState
}

func NewPortfolioEngine(deps Deps, loader PortfolioLoader) *PortfolioEngine {
	return &PortfolioEngine{
		deps:   deps.withDefaults(),
		loader: loader,
		state:  PortfolioState{Lang: i18n.Default, Filter: filterAll},
	}
}

// State returns a copy of the current state.
func (e *PortfolioEngine) State() PortfolioState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// View reports which render target the page carries. The overview wins
// when both are present.
func (e *PortfolioEngine) View() View {
	var v View
	e.deps.Doc.Update(func() { v = e.view() })
	return v
}

func (e *PortfolioEngine) view() View {
	switch {
	case e.deps.Doc.ByID(MountOverview) != nil:
		return ViewOverview
	case e.deps.Doc.ByID(MountDetail) != nil:
		return ViewDetail
	}
	return ViewNone
}

// Bootstrap resolves the language, loads the portfolio and renders the
// mounted view. Fetch failures are logged and leave the mounts empty.
func (e *PortfolioEngine) Bootstrap(ctx context.Context) {
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

	p, err := e.loader.LoadPortfolio(ctx)
	if err != nil {
		e.deps.Log.Error("portfolio bootstrap failed", zap.String("lang", string(lang)), zap.Error(err))
		return
	}

	e.mu.Lock()
	e.state.Portfolio = p
	state := e.state
	doc.Update(func() {
		e.render(state)
		doc.Commit()
	})
	e.mu.Unlock()

	e.deps.Bus.Emit(signal.Event{Name: signal.RenderComplete, Source: "portfolio", Lang: state.Lang})
}

// SetLanguage persists lang, updates the language chrome and re-renders the
// mounted view from scratch. Before the portfolio has loaded only the chrome
// changes and no signal is emitted.
func (e *PortfolioEngine) SetLanguage(raw string) bool {
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
		e.render(state)
		doc.Commit()
	})
	e.mu.Unlock()

	if state.Portfolio != nil {
		e.deps.Bus.Emit(signal.Event{Name: signal.RenderComplete, Source: "portfolio", Lang: lang})
	}
	return true
}

// PressFilter moves the pressed state of the filter bar to tag. It returns
// false when no toggle carries that tag. The card list is left alone.
func (e *PortfolioEngine) PressFilter(tag string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	doc := e.deps.Doc
	found := false
	doc.Update(func() {
		buttons := doc.Find(".filter-bar [data-filter]")
		for _, b := range buttons {
			if v, _ := dom.GetAttr(b, "data-filter"); v == tag {
				found = true
			}
		}
		if !found {
			return
		}
		for _, b := range buttons {
			v, _ := dom.GetAttr(b, "data-filter")
			dom.SetAttr(b, "aria-pressed", boolAttr(v == tag))
			doc.Touch(b)
		}
		doc.Commit()
	})
	if found {
		e.state.Filter = tag
	}
	return found
}

func (e *PortfolioEngine) render(s PortfolioState) {
	switch e.view() {
	case ViewOverview:
		e.renderOverview(s)
	case ViewDetail:
		e.renderDetail(s)
	}
	applyHeadings(e.deps.Doc, s.Lang)
}

// renderOverview rebuilds the card grid.
func (e *PortfolioEngine) renderOverview(s PortfolioState) {
	if s.Portfolio == nil {
		return
	}
	doc := e.deps.Doc
	var children []*html.Node
	if len(s.Portfolio.Projects) > filterThreshold {
		children = append(children, filterBar(s.Portfolio.Projects, s.Filter, s.Lang))
	}
	for i := range s.Portfolio.Projects {
		children = append(children, caseCard(&s.Portfolio.Projects[i], s.Lang))
	}
	doc.Mount(MountOverview, children...)
	doc.SetTitle(i18n.T(s.Lang, "portfolio.page.title"))
}

// renderDetail rebuilds the case-study page for the mount's slug. An
// unknown slug leaves the mount untouched.
func (e *PortfolioEngine) renderDetail(s PortfolioState) {
	doc := e.deps.Doc
	mount := doc.ByID(MountDetail)
	if mount == nil || s.Portfolio == nil {
		return
	}
	slug, _ := dom.GetAttr(mount, "data-slug")
	if slug == "" && e.deps.Env != nil {
		slug = e.deps.Env.Query("slug")
	}
	cs, ok := s.Portfolio.Find(slug)
	if !ok {
		e.deps.Log.Warn("case study not found", zap.String("slug", slug))
		return
	}
	doc.Mount(MountDetail, caseHeader(cs, s.Lang), caseBody(cs, s.Lang))
	if title := i18n.Localize(cs.Title, s.Lang); title != "" {
		doc.SetTitle(title + " – " + i18n.T(s.Lang, "portfolio.page.title"))
	}
	doc.SetMeta("description", i18n.Localize(cs.Teaser, s.Lang))
}

func filterBar(projects []model.CaseStudy, pressed string, lang i18n.Lang) *html.Node {
	seen := map[string]bool{}
	var tags []string
	for _, p := range projects {
		for _, t := range p.Tags {
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)

	if pressed == "" || (pressed != filterAll && !seen[pressed]) {
		pressed = filterAll
	}
	button := func(value, label string) *html.Node {
		return dom.El("button", dom.Attrs{
			"type":         "button",
			"class":        "filter-bar__toggle",
			"data-filter":  value,
			"aria-pressed": boolAttr(value == pressed),
		}, dom.Text(label))
	}
	buttons := []*html.Node{button(filterAll, i18n.T(lang, "portfolio.filter.all"))}
	for _, t := range tags {
		buttons = append(buttons, button(t, t))
	}
	return dom.El("nav", dom.Attrs{"class": "filter-bar", "aria-label": i18n.T(lang, "portfolio.filter")}, buttons...)
}

// statusBadge returns the single badge a case study shows. WIP wins over
// confidential.
func statusBadge(cs *model.CaseStudy, lang i18n.Lang) *html.Node {
	switch {
	case cs.WIP:
		return dom.El("span", dom.Attrs{"class": "badge badge--wip"}, dom.Text(i18n.T(lang, "badge.wip")))
	case cs.Confidential:
		return dom.El("span", dom.Attrs{"class": "badge badge--confidential"}, dom.Text(i18n.T(lang, "badge.confidential")))
	}
	return nil
}

// DetailHref is the link target of a case study card.
func DetailHref(slug string) string {
	return DetailPage + "?slug=" + url.QueryEscape(slug)
}

func caseCard(cs *model.CaseStudy, lang i18n.Lang) *html.Node {
	return dom.El("article", dom.Attrs{"class": "case-card", "data-reveal": "", "data-slug": cs.Slug},
		dom.El("div", dom.Attrs{"class": "case-card__meta"},
			dom.TextEl("span", dom.Attrs{"class": "case-card__year"}, cs.Year.String()),
			statusBadge(cs, lang),
		),
		dom.TextEl("h2", dom.Attrs{"class": "case-card__title"}, i18n.Localize(cs.Title, lang)),
		dom.TextEl("p", dom.Attrs{"class": "case-card__teaser"}, i18n.Localize(cs.Teaser, lang)),
		tagList(cs.Tags),
		dom.El("a", dom.Attrs{"class": "case-card__cta", "href": DetailHref(cs.Slug)}, dom.Text(i18n.T(lang, "portfolio.cta"))),
	)
}

func caseHeader(cs *model.CaseStudy, lang i18n.Lang) *html.Node {
	var wip *html.Node
	if cs.WIP {
		wip = dom.El("span", dom.Attrs{"class": "badge badge--wip"}, dom.Text(i18n.T(lang, "badge.wip")))
	}

	var dl []*html.Node
	field := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		dl = append(dl,
			dom.El("dt", nil, dom.Text(i18n.T(lang, key))),
			dom.El("dd", nil, dom.Text(value)),
		)
	}
	field("cs.year", cs.Year.String())
	field("cs.duration", i18n.Localize(cs.Duration, lang))
	field("cs.client", i18n.Localize(cs.Client, lang))
	field("cs.role", i18n.Localize(cs.Role, lang))
	var meta *html.Node
	if len(dl) > 0 {
		meta = dom.El("dl", dom.Attrs{"class": "cs-meta"}, dl...)
	}

	var visit *html.Node
	if cs.URL != "" {
		visit = dom.El("a", dom.Attrs{
			"class":  "cs-visit",
			"href":   absoluteURL(cs.URL),
			"target": "_blank",
			"rel":    "noopener noreferrer",
		}, dom.Text(i18n.T(lang, "cs.visit")))
	}

	return dom.El("header", dom.Attrs{"class": "cs-header"},
		dom.El("span", dom.Attrs{"class": "cs-label"}, dom.Text(i18n.T(lang, "cs.label"))),
		wip,
		dom.TextEl("h1", dom.Attrs{"class": "cs-title"}, i18n.Localize(cs.Title, lang)),
		meta,
		tagList(cs.Tags),
		visit,
	)
}

func caseBody(cs *model.CaseStudy, lang i18n.Lang) *html.Node {
	body := dom.El("div", dom.Attrs{"class": "cs-body"})
	for _, b := range cs.Sections {
		dom.Append(body, renderBlock(b, lang))
	}
	if cs.Confidential {
		dom.Append(body, disclaimerBlock(lang))
	}
	return body
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
