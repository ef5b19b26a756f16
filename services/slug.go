package services

import (
	"regexp"
	"strings"
)

var (
	slugStrip  = regexp.MustCompile(`[^\w ]+`)
	slugSpaces = regexp.MustCompile(` +`)
)

// reservedSlugs collide with the admin routes under /api/blog and /api/research.
var reservedSlugs = map[string]bool{"admin": true, "lookup": true}

func checkSlug(slug string) error {
	if reservedSlugs[strings.ToLower(strings.TrimSpace(slug))] {
		return invalid("Slug is reserved")
	}
	return nil
}

// Slugify lowercases title, drops everything except ASCII word characters and
// spaces, and turns runs of spaces into a single hyphen. Leading or trailing
// spaces become hyphens too; the result is not trimmed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(s, "-")
}
