package usecase

import (
	"golang.org/x/net/html"

	"cv-folio/internal/dom"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round">`

var icons = map[string]string{
	"research":  `<circle cx="11" cy="11" r="7"></circle><path d="M20 20l-4-4"></path>`,
	"interview": `<path d="M4 5h16v10H8l-4 4z"></path>`,
	"workshop":  `<circle cx="8" cy="8" r="3"></circle><circle cx="16" cy="8" r="3"></circle><path d="M3 20c0-3 2-5 5-5s5 2 5 5M11 20c0-3 2-5 5-5s5 2 5 5"></path>`,
	"prototype": `<rect x="3" y="4" width="18" height="14" rx="2"></rect><path d="M3 8h18"></path>`,
	"analytics": `<path d="M4 20V10M10 20V4M16 20v-7M22 20H2"></path>`,
	"strategy":  `<path d="M12 2l3 7h7l-5.5 4 2 7-6.5-4.5L5.5 20l2-7L2 9h7z"></path>`,
	"design":    `<path d="M3 21l3-1 12-12-2-2L4 18z"></path><path d="M14 6l2 2"></path>`,
	"testing":   `<path d="M9 3h6M10 3v6l-5 9a2 2 0 002 3h10a2 2 0 002-3l-5-9V3"></path>`,
	"code":      `<path d="M8 6l-6 6 6 6M16 6l6 6-6 6"></path>`,
	"team":      `<circle cx="12" cy="7" r="4"></circle><path d="M4 21c0-4 4-6 8-6s8 2 8 6"></path>`,
}

// Icon returns a fresh SVG node for the identifier, or nil when the
// identifier is unknown.
func Icon(name string) *html.Node {
	body, ok := icons[name]
	if !ok {
		return nil
	}
	nodes, err := dom.Fragment(svgOpen + body + `</svg>`)
	if err != nil || len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
