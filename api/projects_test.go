package api

import (
	"fmt"
	"net/http"
	"testing"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEndToEnd(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title":       "X",
		"description": "D",
		"image":       "/i.png",
		"techStack":   []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Project](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, []string{"Go"}, created.TechStack)
	assert.False(t, created.Featured)

	w = s.do(t, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Project](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "X", list[0].Title)
	assert.Equal(t, []string{"Go"}, list[0].TechStack)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[models.Project](t, w).ID)

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), map[string]any{
		"title":       "Y",
		"description": "D2",
		"image":       "/j.png",
		"techStack":   []string{"Go", "gin"},
		"featured":    true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Project](t, w)
	assert.Equal(t, "Y", updated.Title)
	assert.True(t, updated.Featured)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Project deleted successfully", decode[map[string]string](t, w)["message"])

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", errorOf(t, w))
}

func TestProjectErrors(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodPost, "/api/projects", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title, description, image, and techStack are required", errorOf(t, w))

	w = s.do(t, http.MethodPost, "/api/projects", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errorOf(t, w))

	w = s.do(t, http.MethodPut, "/api/projects/999", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", errorOf(t, w))

	w = s.do(t, http.MethodDelete, "/api/projects/999", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(t, http.MethodGet, "/api/projects/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(t, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
