package i18n

import "cv-folio/internal/model"

// Localize returns the value of t for lang. Plain fields are returned
// verbatim, mappings fall back to Default and then to the empty string.
func Localize(t model.Text, lang Lang) string {
	if t.IsPlain() {
		return t.Plain
	}
	if v, ok := t.ByLang[string(lang)]; ok {
		return v
	}
	if v, ok := t.ByLang[string(Default)]; ok {
		return v
	}
	return ""
}

// LocalizeList is Localize for bilingual string lists. Empty entries are dropped.
func LocalizeList(l model.TextList, lang Lang) []string {
	var items []string
	switch {
	case l.IsPlain():
		items = l.Plain
	default:
		v, ok := l.ByLang[string(lang)]
		if !ok {
			v = l.ByLang[string(Default)]
		}
		items = v
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
