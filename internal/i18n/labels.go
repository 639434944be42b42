package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

var dict = map[Lang]map[string]string{
	DE: {
		"date.present": "heute",

		"section.summary":        "Profil",
		"section.experience":     "Berufserfahrung",
		"section.education":      "Ausbildung",
		"section.skills":         "Kenntnisse",
		"section.skills.special": "Fachkenntnisse",
		"section.skills.tools":   "Werkzeuge",
		"section.skills.misc":    "Weitere Kenntnisse",
		"section.languages":      "Sprachen",
		"section.certifications": "Zertifikate",
		"section.projects":       "Projekte",
		"section.contact":        "Kontakt",

		"cv.page.title":       "%s – Lebenslauf",
		"cv.page.description": "Lebenslauf von %s",
		"cv.download":         "Als PDF herunterladen",
		"cv.error":            "Der Lebenslauf konnte nicht geladen werden. Bitte versuchen Sie es später erneut.",
		"cv.roles":            "Positionen",

		"meter.of":    "%s von %s",
		"meter.label": "%s: %s",

		"toggle.de": "Sprache: Deutsch",
		"toggle.en": "Sprache: Englisch",

		"portfolio.page.title": "Portfolio",
		"portfolio.cta":        "Case Study ansehen",
		"portfolio.filter":     "Nach Thema filtern",
		"portfolio.filter.all": "Alle",
		"badge.wip":            "In Arbeit",
		"badge.confidential":   "Vertraulich",

		"cs.label":        "Case Study",
		"cs.year":         "Jahr",
		"cs.duration":     "Dauer",
		"cs.client":       "Kunde",
		"cs.role":         "Rolle",
		"cs.visit":        "Projekt besuchen",
		"cs.challenge":    "Herausforderung",
		"cs.approach":     "Vorgehen",
		"cs.outcome":      "Ergebnis",
		"cs.takeaways":    "Wichtigste Erkenntnisse",
		"cs.confidential": "Dieses Projekt unterliegt einer Vertraulichkeitsvereinbarung. Namen, Zahlen und Visuals wurden verfremdet oder weggelassen.",
		"cs.visual":       "Visual folgt",
	},
	EN: {
		"date.present": "present",

		"section.summary":        "Profile",
		"section.experience":     "Experience",
		"section.education":      "Education",
		"section.skills":         "Skills",
		"section.skills.special": "Specialized skills",
		"section.skills.tools":   "Tools",
		"section.skills.misc":    "Further skills",
		"section.languages":      "Languages",
		"section.certifications": "Certifications",
		"section.projects":       "Projects",
		"section.contact":        "Contact",

		"cv.page.title":       "%s – CV",
		"cv.page.description": "Curriculum vitae of %s",
		"cv.download":         "Download as PDF",
		"cv.error":            "The CV could not be loaded. Please try again later.",
		"cv.roles":            "Roles",

		"meter.of":    "%s of %s",
		"meter.label": "%s: %s",

		"toggle.de": "Language: German",
		"toggle.en": "Language: English",

		"portfolio.page.title": "Portfolio",
		"portfolio.cta":        "View case study",
		"portfolio.filter":     "Filter by topic",
		"portfolio.filter.all": "All",
		"badge.wip":            "Work in progress",
		"badge.confidential":   "Confidential",

		"cs.label":        "Case study",
		"cs.year":         "Year",
		"cs.duration":     "Duration",
		"cs.client":       "Client",
		"cs.role":         "Role",
		"cs.visit":        "Visit project",
		"cs.challenge":    "Challenge",
		"cs.approach":     "Approach",
		"cs.outcome":      "Outcome",
		"cs.takeaways":    "Key takeaways",
		"cs.confidential": "This project is covered by a non-disclosure agreement. Names, figures and visuals have been altered or omitted.",
		"cs.visual":       "Visual coming soon",
	},
}

// T returns the UI string for key in lang, falling back to Default and
// finally to the key itself.
func T(lang Lang, key string) string {
	if m, ok := dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := dict[Default][key]; ok {
		return v
	}
	return key
}

// Tf is T with fmt-style arguments.
func Tf(lang Lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Number formats a level value without trailing zeros, using the German
// decimal comma where appropriate.
func Number(v float64, lang Lang) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if lang == DE {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// MeterPhrase renders "x of y" for lang.
func MeterPhrase(level, max float64, lang Lang) string {
	return Tf(lang, "meter.of", Number(level, lang), Number(max, lang))
}
