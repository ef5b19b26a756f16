package europepmc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"portfolio/config"
	"portfolio/providers"

	"go.uber.org/zap"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Fetcher looks DOIs up in Europe PMC.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

func (f *Fetcher) Name() string {
	return "europepmc"
}

// Lookup searches Europe PMC for an exact DOI match.
func (f *Fetcher) Lookup(ctx context.Context, doi string) (*providers.Metadata, error) {
	log := f.Logger.With(zap.String("doi", doi))

	query := fmt.Sprintf("DOI:\"%s\"", doi)
	searchURL := fmt.Sprintf("%s/search?query=%s&format=json&resultType=core&pageSize=1",
		strings.TrimRight(f.Config.EuropePMCBaseURL, "/"), url.QueryEscape(query))
	log.Debug("Calling Europe PMC", zap.String("url", searchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("europepmc request failed with status: %d", resp.StatusCode)
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return nil, err
	}
	if len(searchResponse.ResultList.Result) == 0 {
		log.Info("No Europe PMC record for DOI")
		return nil, providers.ErrNoRecord
	}

	meta := mapArticle(&searchResponse.ResultList.Result[0])
	if meta.DOI == "" {
		meta.DOI = doi
	}
	log.Info("Europe PMC record found", zap.String("title", meta.Title))
	return meta, nil
}

func mapArticle(article *Article) *providers.Metadata {
	meta := &providers.Metadata{
		DOI:         article.DOI,
		Title:       strings.TrimSuffix(strings.TrimSpace(article.Title), "."),
		Authors:     strings.TrimSuffix(strings.TrimSpace(article.AuthorString), "."),
		JournalName: article.journal(),
		Year:        article.year(),
		Abstract:    strings.TrimSpace(tagPattern.ReplaceAllString(article.AbstractText, "")),
		Keywords:    article.KeywordList.Keyword,
	}

	for _, u := range article.FullTextURLList.FullTextURL {
		if u.DocumentStyle == "pdf" && u.AvailabilityCode == "OA" {
			meta.PDFURL = u.URL
			break
		}
	}

	for _, pubType := range article.PubTypeList.PubType {
		if strings.EqualFold(pubType, "preprint") {
			meta.Preprint = true
			break
		}
	}
	return meta
}
