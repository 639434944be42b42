package i18n

import (
	"strconv"
	"strings"
)

var shortMonths = map[Lang][12]string{
	DE: {"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	EN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// FormatDate renders "YYYY-MM" as a short month and year, passes "YYYY"
// through and turns an empty value into the present token.
func FormatDate(value string, lang Lang) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return T(lang, "date.present")
	}
	if len(value) != 7 || value[4] != '-' {
		return value
	}
	year, err := strconv.Atoi(value[:4])
	if err != nil {
		return value
	}
	month, err := strconv.Atoi(value[5:])
	if err != nil || month < 1 || month > 12 {
		return value
	}
	months, ok := shortMonths[lang]
	if !ok {
		months = shortMonths[Default]
	}
	return months[month-1] + " " + strconv.Itoa(year)
}

// FormatPeriod joins two dates with an en-dash. An absent end reads as the
// present token; an absent start yields the end alone.
func FormatPeriod(start, end string, lang Lang) string {
	if strings.TrimSpace(start) == "" {
		if strings.TrimSpace(end) == "" {
			return ""
		}
		return FormatDate(end, lang)
	}
	return FormatDate(start, lang) + " – " + FormatDate(end, lang)
}
