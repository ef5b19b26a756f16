package web

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthNames = map[string][12]string{
	"id": {"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"},
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

// FormatDate renders t in the long date format of locale: "19 Oktober 2026"
// for id, "October 19, 2026" for en. Unknown locales use id.
func FormatDate(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}
	switch locale {
	case "en":
		return fmt.Sprintf("%s %d, %d", monthNames["en"][t.Month()-1], t.Day(), t.Year())
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), monthNames["id"][t.Month()-1], t.Year())
	}
}

// TypeLabel turns "conference" into "Conference".
func TypeLabel(t string, locale string) string {
	tag := language.Indonesian
	if locale == "en" {
		tag = language.English
	}
	return cases.Title(tag).String(strings.ToLower(t))
}

// firstN returns at most n items.
func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
