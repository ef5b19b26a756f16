package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"portfolio/models"
	"portfolio/providers"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const excerptLength = 200

// LookupService prefills research drafts from DOI metadata.
type LookupService struct {
	Metadata providers.MetadataProvider
	// PDFs is optional.
	PDFs   providers.PDFLocator
	Logger *zap.Logger
}

func NewLookupService(metadata providers.MetadataProvider, pdfs providers.PDFLocator, logger *zap.Logger) *LookupService {
	return &LookupService{Metadata: metadata, PDFs: pdfs, Logger: logger}
}

// LookupDOI queries the metadata provider and the PDF locator concurrently and
// merges their answers into a draft. A missing PDF link is not an error.
func (s *LookupService) LookupDOI(ctx context.Context, doi string) (*ResearchInput, error) {
	doi = providers.NormalizeDOI(doi)
	if doi == "" {
		return nil, invalid("DOI is required")
	}
	log := s.Logger.With(zap.String("doi", doi))

	var (
		meta    *providers.Metadata
		pdfLink string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.Metadata.Lookup(gctx, doi)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	if s.PDFs != nil {
		g.Go(func() error {
			link, err := s.PDFs.GetPDFLink(gctx, doi)
			if err != nil {
				log.Warn("PDF lookup failed", zap.Error(err))
				return nil
			}
			pdfLink = link
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, providers.ErrNoRecord) {
			return nil, ErrNotFound
		}
		log.Error("DOI lookup failed", zap.String("provider", s.Metadata.Name()), zap.Error(err))
		return nil, err
	}

	if pdfLink == "" {
		pdfLink = meta.PDFURL
	}
	return draftFromMetadata(doi, meta, pdfLink), nil
}

func draftFromMetadata(doi string, meta *providers.Metadata, pdfLink string) *ResearchInput {
	title := NormalizeText(meta.Title)
	abstract := NormalizeText(meta.Abstract)
	t := models.ResearchJournal
	if meta.Preprint {
		t = models.ResearchOther
	}
	excerpt := truncate(abstract, excerptLength)
	if excerpt == "" {
		excerpt = title
	}
	draft := &ResearchInput{
		Title:       title,
		Slug:        Slugify(title),
		Excerpt:     excerpt,
		Type:        string(t),
		Authors:     nonEmpty(meta.Authors),
		JournalName: nonEmpty(meta.JournalName),
		DOI:         &doi,
		PDFURL:      nonEmpty(pdfLink),
		ExternalURL: nonEmpty("https://doi.org/" + doi),
		Abstract:    nonEmpty(abstract),
	}
	if meta.Year > 0 {
		year := meta.Year
		draft.PublicationYear = &year
	}
	if len(meta.Keywords) > 0 {
		draft.Keywords = nonEmpty(models.JoinKeywords(meta.Keywords))
	}
	// without an abstract the body is the reference line
	draft.Content = abstract
	if draft.Content == "" {
		draft.Content = FormatReference(&models.Research{
			Title:           title,
			Authors:         draft.Authors,
			PublicationYear: draft.PublicationYear,
			JournalName:     draft.JournalName,
			DOI:             draft.DOI,
		})
	}
	return draft
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// truncate cuts s at a word boundary so that it holds at most n runes plus "...".
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}
