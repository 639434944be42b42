package usecase

import (
	"math"
	"strconv"

	"golang.org/x/net/html"

	"cv-folio/internal/dom"
	"cv-folio/internal/i18n"
)

// fillPercent maps level/max onto 0..100.
func fillPercent(level, max float64) int {
	if max <= 0 || level <= 0 {
		return 0
	}
	pct := math.Round(level / max * 100)
	if pct > 100 {
		pct = 100
	}
	return int(pct)
}

// meter renders a proficiency control. The fill starts at width 0; its
// target lives in data-fill until the reveal controller applies it.
func meter(name string, level, max float64, lang i18n.Lang) *html.Node {
	label := i18n.Tf(lang, "meter.label", name, i18n.MeterPhrase(level, max, lang))
	return dom.El("div", dom.Attrs{
		"class":         "meter",
		"role":          "meter",
		"aria-valuenow": strconv.FormatFloat(level, 'f', -1, 64),
		"aria-valuemin": "0",
		"aria-valuemax": strconv.FormatFloat(max, 'f', -1, 64),
		"aria-label":    label,
	},
		dom.El("div", dom.Attrs{
			"class":     "meter__fill",
			"style":     "width:0%",
			"data-fill": strconv.Itoa(fillPercent(level, max)),
		}),
	)
}

// skillRow renders a named meter with an optional descriptor.
func skillRow(name string, level, max float64, lang i18n.Lang, descriptor string) *html.Node {
	return dom.El("div", dom.Attrs{"class": "skill"},
		dom.TextEl("span", dom.Attrs{"class": "skill__name"}, name),
		dom.TextEl("span", dom.Attrs{"class": "skill__label"}, descriptor),
		meter(name, level, max, lang),
	)
}

// tagList renders plain, language-agnostic tags as chips.
func tagList(tags []string) *html.Node {
	return dom.List("tags", tags)
}
