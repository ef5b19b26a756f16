package unpaywall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/config"

	"go.uber.org/zap"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Response is the part of the Unpaywall answer we use.
type Response struct {
	IsOA           bool `json:"is_oa"`
	BestOALocation *struct {
		URLForPDF     string `json:"url_for_pdf"`
		URLForLanding string `json:"url_for_landing_page"`
	} `json:"best_oa_location"`
}

// Fetcher queries Unpaywall for open-access copies.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// GetPDFLink returns a free PDF link for doi, or "" when there is none.
func (f *Fetcher) GetPDFLink(ctx context.Context, doi string) (string, error) {
	if f.Config.UnpaywallEmail == "" {
		return "", errors.New("unpaywall email is not configured")
	}

	reqURL := fmt.Sprintf("%s/%s?email=%s", strings.TrimRight(f.Config.UnpaywallBaseURL, "/"),
		doi, url.QueryEscape(f.Config.UnpaywallEmail))
	log := f.Logger.With(zap.String("doi", doi))
	log.Debug("Calling Unpaywall")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unpaywall request failed with status: %d", resp.StatusCode)
	}

	var ur Response
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", err
	}

	if ur.BestOALocation != nil && ur.BestOALocation.URLForPDF != "" {
		log.Info("PDF link found via Unpaywall")
		return ur.BestOALocation.URLForPDF, nil
	}
	log.Debug("No PDF link in Unpaywall response")
	return "", nil
}
