package services

import (
	"fmt"
	"strings"

	"portfolio/models"
)

const maxCitedAuthors = 6

// FormatReference renders a research item as a compact reference string, e.g.
// "Doe J, Roe R (2023). Title. Journal. doi:10.1000/xyz".
func FormatReference(r *models.Research) string {
	authors := "Unknown Authors"
	if r.Authors != nil && strings.TrimSpace(*r.Authors) != "" {
		authors = citedAuthors(*r.Authors)
	}
	year := "n.d."
	if r.PublicationYear != nil && *r.PublicationYear > 0 {
		year = fmt.Sprintf("%d", *r.PublicationYear)
	}
	title := strings.TrimSuffix(strings.TrimSpace(r.Title), ".")
	if title == "" {
		title = "Untitled"
	}

	ref := fmt.Sprintf("%s (%s). %s.", authors, year, title)
	if r.JournalName != nil && *r.JournalName != "" {
		ref += " " + strings.TrimSuffix(*r.JournalName, ".") + "."
	}
	if r.DOI != nil && *r.DOI != "" {
		ref += " doi:" + *r.DOI
	}
	return ref
}

// citedAuthors keeps the first six comma-separated authors and appends "et al.".
func citedAuthors(list string) string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > maxCitedAuthors {
		return strings.Join(names[:maxCitedAuthors], ", ") + " et al."
	}
	return strings.Join(names, ", ")
}
