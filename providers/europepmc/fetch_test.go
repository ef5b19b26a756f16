package europepmc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/config"
	"portfolio/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const coreResponse = `{
  "hitCount": 1,
  "resultList": {"result": [{
    "id": "123", "source": "MED", "pmid": "123",
    "doi": "10.1000/xyz",
    "title": "Graph methods for routing.",
    "authorString": "Doe J, Roe R.",
    "journalInfo": {"journal": {"title": "Journal of Networks"}},
    "pubYear": "2023",
    "abstractText": "<h4>Background</h4>We route packets.",
    "keywordList": {"keyword": ["graphs", "routing"]},
    "fullTextUrlList": {"fullTextUrl": [
      {"availabilityCode": "S", "documentStyle": "html", "url": "https://example.org/html"},
      {"availabilityCode": "OA", "documentStyle": "pdf", "url": "https://example.org/a.pdf"}
    ]},
    "pubTypeList": {"pubType": ["research-article"]}
  }]}
}`

func TestLookup(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(coreResponse))
	}))
	defer srv.Close()

	f := NewFetcher(&config.Config{EuropePMCBaseURL: srv.URL}, zap.NewNop())
	meta, err := f.Lookup(context.Background(), "10.1000/xyz")
	require.NoError(t, err)

	assert.Equal(t, `DOI:"10.1000/xyz"`, gotQuery)
	assert.Equal(t, "Graph methods for routing", meta.Title)
	assert.Equal(t, "Doe J, Roe R", meta.Authors)
	assert.Equal(t, "Journal of Networks", meta.JournalName)
	assert.Equal(t, 2023, meta.Year)
	assert.Equal(t, "BackgroundWe route packets.", meta.Abstract)
	assert.Equal(t, []string{"graphs", "routing"}, meta.Keywords)
	assert.Equal(t, "https://example.org/a.pdf", meta.PDFURL)
	assert.False(t, meta.Preprint)
}

func TestLookupNoRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hitCount":0,"resultList":{"result":[]}}`))
	}))
	defer srv.Close()

	f := NewFetcher(&config.Config{EuropePMCBaseURL: srv.URL}, zap.NewNop())
	_, err := f.Lookup(context.Background(), "10.1000/none")
	assert.ErrorIs(t, err, providers.ErrNoRecord)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewFetcher(&config.Config{EuropePMCBaseURL: srv.URL}, zap.NewNop())
	_, err := f.Lookup(context.Background(), "10.1000/xyz")
	assert.Error(t, err)
}

func TestMapArticlePreprint(t *testing.T) {
	a := &Article{Title: "T", JournalTitle: "bioRxiv", PubYear: "n/a"}
	a.PubTypeList.PubType = []string{"Preprint"}
	meta := mapArticle(a)
	assert.True(t, meta.Preprint)
	assert.Equal(t, "bioRxiv", meta.JournalName)
	assert.Zero(t, meta.Year)
}
