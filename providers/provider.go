package providers

import (
	"context"
	"errors"
	"strings"
)

// ErrNoRecord is returned when a provider knows nothing about a DOI.
var ErrNoRecord = errors.New("no record for doi")

// Metadata is the bibliographic data a provider found for a DOI.
type Metadata struct {
	DOI         string
	Title       string
	Authors     string
	JournalName string
	Year        int
	Abstract    string
	Keywords    []string
	Preprint    bool
	PDFURL      string
}

// MetadataProvider resolves DOIs to bibliographic metadata (e.g. Europe PMC).
type MetadataProvider interface {
	Lookup(ctx context.Context, doi string) (*Metadata, error)
	Name() string
}

// PDFLocator finds an open-access PDF for a DOI (e.g. Unpaywall). An empty
// link with a nil error means none is known.
type PDFLocator interface {
	GetPDFLink(ctx context.Context, doi string) (string, error)
}

// NormalizeDOI strips resolver prefixes and whitespace from a DOI.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"} {
		if len(doi) >= len(prefix) && strings.EqualFold(doi[:len(prefix)], prefix) {
			doi = doi[len(prefix):]
			break
		}
	}
	return strings.TrimSpace(doi)
}
