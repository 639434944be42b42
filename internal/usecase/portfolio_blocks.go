package usecase

import (
	"strings"

	"golang.org/x/net/html"

	"cv-folio/internal/dom"
	"cv-folio/internal/i18n"
	"cv-folio/internal/model"
)

// blockRenderer builds the node for one payload. A nil result means the
// block had nothing to show and is dropped.
type blockRenderer func(p model.Payload, lang i18n.Lang) *html.Node

var blockRenderers = map[model.BlockType]blockRenderer{
	model.BlockStatBar:                  renderStatBar,
	model.BlockText:                     renderTextBlock,
	model.BlockInsight:                  renderInsight,
	model.BlockTimeline:                 renderTimeline,
	model.BlockMethodGrid:               renderMethodGrid,
	model.BlockVisualSlots:              renderVisualSlots,
	model.BlockKeyTakeaways:             renderKeyTakeaways,
	model.BlockChallengeApproachOutcome: renderChallengeApproachOutcome,
}

// renderBlock dispatches on the block type. Unknown types render nothing.
func renderBlock(b model.Block, lang i18n.Lang) *html.Node {
	r, ok := blockRenderers[b.Type]
	if !ok || b.Payload == nil {
		return nil
	}
	n := r(b.Payload, lang)
	if n == nil {
		return nil
	}
	decorateBlock(n, string(b.Type))
	return n
}

func decorateBlock(n *html.Node, kind string) {
	dom.AddClass(n, "block")
	dom.AddClass(n, "block--"+strings.ReplaceAll(kind, "_", "-"))
	dom.SetAttr(n, "data-reveal", "")
}

// disclaimerBlock is appended to every confidential case study.
func disclaimerBlock(lang i18n.Lang) *html.Node {
	n := dom.El("aside", dom.Attrs{"role": "note"},
		dom.El("p", nil, dom.Text(i18n.T(lang, "cs.confidential"))),
	)
	decorateBlock(n, "disclaimer")
	return n
}

func blockTitle(t model.Text, lang i18n.Lang) *html.Node {
	return dom.TextEl("h2", dom.Attrs{"class": "block__title"}, i18n.Localize(t, lang))
}

func prose(t model.Text, lang i18n.Lang) *html.Node {
	nodes := dom.Prose(i18n.Localize(t, lang))
	if len(nodes) == 0 {
		return nil
	}
	return dom.El("div", dom.Attrs{"class": "prose"}, nodes...)
}

func renderStatBar(p model.Payload, lang i18n.Lang) *html.Node {
	sb := p.(*model.StatBar)
	var stats []*html.Node
	for _, s := range sb.Stats {
		if s.Value == "" {
			continue
		}
		stats = append(stats, dom.El("div", dom.Attrs{"class": "stat"},
			dom.TextEl("span", dom.Attrs{"class": "stat__value"}, s.Value.String()),
			dom.TextEl("span", dom.Attrs{"class": "stat__label"}, i18n.Localize(s.Label, lang)),
		))
	}
	if len(stats) == 0 {
		return nil
	}
	return dom.El("div", nil, stats...)
}

func renderTextBlock(p model.Payload, lang i18n.Lang) *html.Node {
	tb := p.(*model.TextBlock)
	title, body := blockTitle(tb.Title, lang), prose(tb.Body, lang)
	if title == nil && body == nil {
		return nil
	}
	return dom.El("section", nil, title, body)
}

func renderInsight(p model.Payload, lang i18n.Lang) *html.Node {
	in := p.(*model.Insight)
	body := prose(in.Text, lang)
	if body == nil {
		return nil
	}
	return dom.El("aside", nil,
		dom.TextEl("span", dom.Attrs{"class": "insight__label"}, i18n.Localize(in.Label, lang)),
		body,
	)
}

func renderTimeline(p model.Payload, lang i18n.Lang) *html.Node {
	tl := p.(*model.Timeline)
	var phases []*html.Node
	for _, ph := range tl.Phases {
		title := i18n.Localize(ph.Title, lang)
		text := i18n.Localize(ph.Text, lang)
		if title == "" && text == "" {
			continue
		}
		phases = append(phases, dom.El("li", dom.Attrs{"class": "phase"},
			dom.TextEl("span", dom.Attrs{"class": "phase__label"}, i18n.Localize(ph.Label, lang)),
			dom.TextEl("h3", dom.Attrs{"class": "phase__title"}, title),
			dom.TextEl("p", dom.Attrs{"class": "phase__text"}, text),
		))
	}
	if len(phases) == 0 {
		return nil
	}
	return dom.El("section", nil,
		blockTitle(tl.Title, lang),
		dom.El("ol", dom.Attrs{"class": "timeline"}, phases...),
	)
}

func renderMethodGrid(p model.Payload, lang i18n.Lang) *html.Node {
	mg := p.(*model.MethodGrid)
	var cards []*html.Node
	for _, m := range mg.Methods {
		title := i18n.Localize(m.Title, lang)
		if title == "" {
			continue
		}
		var icon *html.Node
		if svg := Icon(m.Icon); svg != nil {
			icon = dom.El("span", dom.Attrs{"class": "method__icon", "aria-hidden": "true"}, svg)
		}
		cards = append(cards, dom.El("div", dom.Attrs{"class": "method"},
			icon,
			dom.El("h3", dom.Attrs{"class": "method__title"}, dom.Text(title)),
			dom.TextEl("p", dom.Attrs{"class": "method__text"}, i18n.Localize(m.Text, lang)),
		))
	}
	if len(cards) == 0 {
		return nil
	}
	return dom.El("section", nil,
		blockTitle(mg.Title, lang),
		dom.El("div", dom.Attrs{"class": "method-grid"}, cards...),
	)
}

func renderVisualSlots(p model.Payload, lang i18n.Lang) *html.Node {
	vs := p.(*model.VisualSlots)
	if len(vs.Slots) == 0 {
		return nil
	}
	figures := make([]*html.Node, 0, len(vs.Slots))
	for _, s := range vs.Slots {
		caption := i18n.Localize(s.Caption, lang)
		attrs := dom.Attrs{"class": "visual-slot"}
		if s.Ratio != "" {
			attrs["data-ratio"] = s.Ratio
		}
		var media *html.Node
		if s.Src != "" {
			media = dom.El("img", dom.Attrs{"src": s.Src, "alt": caption, "loading": "lazy"})
		} else {
			media = dom.El("div", dom.Attrs{"class": "visual-slot__placeholder"}, dom.Text(i18n.T(lang, "cs.visual")))
		}
		figures = append(figures, dom.El("figure", attrs,
			media,
			dom.TextEl("figcaption", nil, caption),
		))
	}
	return dom.El("div", nil, figures...)
}

func renderKeyTakeaways(p model.Payload, lang i18n.Lang) *html.Node {
	kt := p.(*model.KeyTakeaways)
	items := make([]string, 0, len(kt.Items))
	for _, it := range kt.Items {
		items = append(items, i18n.Localize(it, lang))
	}
	list := dom.List("takeaways", items)
	if list == nil {
		return nil
	}
	title := blockTitle(kt.Title, lang)
	if title == nil {
		title = dom.El("h2", dom.Attrs{"class": "block__title"}, dom.Text(i18n.T(lang, "cs.takeaways")))
	}
	return dom.El("section", nil, title, list)
}

func renderChallengeApproachOutcome(p model.Payload, lang i18n.Lang) *html.Node {
	cao := p.(*model.ChallengeApproachOutcome)
	var items []*html.Node
	for _, f := range []struct {
		key  string
		text model.Text
	}{
		{"cs.challenge", cao.Challenge},
		{"cs.approach", cao.Approach},
		{"cs.outcome", cao.Outcome},
	} {
		body := prose(f.text, lang)
		if body == nil {
			continue
		}
		items = append(items, dom.El("div", dom.Attrs{"class": "cao__item"},
			dom.El("h3", nil, dom.Text(i18n.T(lang, f.key))),
			body,
		))
	}
	if len(items) == 0 {
		return nil
	}
	return dom.El("section", nil, items...)
}
