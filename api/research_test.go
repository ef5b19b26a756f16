package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"portfolio/config"
	"portfolio/models"
	"portfolio/providers"
	"portfolio/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func research(slug string, published bool) map[string]any {
	return map[string]any{
		"title":     "Study " + slug,
		"slug":      slug,
		"excerpt":   "Short",
		"content":   "Full text",
		"published": published,
		"keywords":  "a, b",
	}
}

func TestResearchRoutes(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodPost, "/api/research", research("pub", true))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	pub := decode[models.Research](t, w)
	assert.Equal(t, models.ResearchJournal, pub.Type)

	w = s.do(t, http.MethodPost, "/api/research", research("hidden", false))
	require.Equal(t, http.StatusCreated, w.Code)
	hidden := decode[models.Research](t, w)

	w = s.do(t, http.MethodGet, "/api/research", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]map[string]any](t, w)
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "content")
	assert.NotContains(t, items[0], "updatedAt")
	assert.Equal(t, "a, b", items[0]["keywords"])

	w = s.do(t, http.MethodGet, "/api/research/hidden", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Research not found", errorOf(t, w))

	w = s.do(t, http.MethodGet, "/api/research/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Research](t, w), 2)

	bad := research("hidden", false)
	bad["type"] = "poster"
	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/research/admin/%d", hidden.ID), bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/research/admin/%d", pub.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Research deleted successfully", decode[map[string]string](t, w)["message"])
}

type stubMetadata struct{}

func (stubMetadata) Name() string { return "stub" }

func (stubMetadata) Lookup(ctx context.Context, doi string) (*providers.Metadata, error) {
	if doi == "10.1000/missing" {
		return nil, providers.ErrNoRecord
	}
	return &providers.Metadata{Title: "Found Paper", Year: 2020}, nil
}

func TestResearchLookupRoute(t *testing.T) {
	s := newTestServer(t, "")
	router := gin.New()
	deps := s.deps
	deps.Lookup = services.NewLookupService(stubMetadata{}, nil, zap.NewNop())
	Register(router, &config.Config{}, deps, zap.NewNop())
	s.router = router

	w := s.do(t, http.MethodGet, "/api/research/admin/lookup?doi=10.1000/xyz", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	draft := decode[services.ResearchInput](t, w)
	assert.Equal(t, "Found Paper", draft.Title)
	assert.Equal(t, "found-paper", draft.Slug)

	w = s.do(t, http.MethodGet, "/api/research/admin/lookup?doi=10.1000/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/research/admin/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DOI is required", errorOf(t, w))
}
