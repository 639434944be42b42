// Package i18n resolves the active language and localizes bilingual content.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported language code.
type Lang string

const (
	DE Lang = "de"
	EN Lang = "en"

	// Default is the hard fallback and the fallback key of every bilingual field.
	Default = DE

	// StorageKey is the persisted preference under the site's storage namespace.
	StorageKey = "mt.lang"
)

// Supported lists the languages in toggle order.
var Supported = []Lang{DE, EN}

func (l Lang) String() string { return string(l) }

// Normalize trims and lower-cases s and reports whether it names a supported language.
func Normalize(s string) (Lang, bool) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, sup := range Supported {
		if l == sup {
			return l, true
		}
	}
	return "", false
}

// IsSupported reports whether s is a supported language code.
func IsSupported(s string) bool {
	_, ok := Normalize(s)
	return ok
}

// OrDefault returns the normalized language or Default.
func OrDefault(s string) Lang {
	if l, ok := Normalize(s); ok {
		return l
	}
	return Default
}

// Sources are the inputs of the initial language resolution, in priority order.
type Sources struct {
	Query     string // ?lang= on the current URL
	Persisted string // value stored under StorageKey
	Browser   string // navigator.language, e.g. "en-US"
}

// ResolveInitial picks the first supported language from the query parameter,
// the persisted preference and the browser's primary subtag, then Default.
func ResolveInitial(src Sources) Lang {
	if l, ok := Normalize(src.Query); ok {
		return l
	}
	if l, ok := Normalize(src.Persisted); ok {
		return l
	}
	if l, ok := Normalize(PrimarySubtag(src.Browser)); ok {
		return l
	}
	return Default
}

// PrimarySubtag reduces a BCP 47 tag such as "en-US" to "en".
func PrimarySubtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if t, err := language.Parse(tag); err == nil {
		if base, conf := t.Base(); conf != language.No {
			return base.String()
		}
	}
	// unparsable tags: take everything before the first separator
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
