package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ligatures = strings.NewReplacer(
		"ﬁ", "fi",
		"ﬂ", "fl",
		"ﬀ", "ff",
		"ﬃ", "ffi",
		"ﬄ", "ffl",
		"ﬆ", "st",
	)
	// "ab-\nweichung" -> "abweichung"
	hyphenBreak   = regexp.MustCompile(`([\p{L}\p{N}])-\r?\n(\p{Ll})`)
	oddSpace      = regexp.MustCompile("[\t\f\v\u00A0]+")
	multiSpace    = regexp.MustCompile(` {2,}`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans text imported from bibliographic sources: NFC with
// ligatures expanded, line-end hyphenation joined and runs of whitespace
// collapsed. Paragraph breaks survive as a single blank line.
func NormalizeText(s string) string {
	s = ligatures.Replace(s)
	s, _, _ = transform.String(norm.NFC, s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = hyphenBreak.ReplaceAllString(s, "$1$2")
	s = oddSpace.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	s = multiNewlines.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRightFunc(lines[i], unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
