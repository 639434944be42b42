package usecase

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// linkLabel shortens a URL to its registrable domain for display,
// e.g. "https://www.example.co.uk/work" becomes "example.co.uk".
func linkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// absoluteURL prefixes scheme-less links so they do not resolve relative to the page.
func absoluteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "://") || strings.HasPrefix(raw, "mailto:") ||
		strings.HasPrefix(raw, "tel:") || strings.HasPrefix(raw, "/") {
		return raw
	}
	return "https://" + raw
}
