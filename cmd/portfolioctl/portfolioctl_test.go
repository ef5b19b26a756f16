package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/api"
	"portfolio/config"
	"portfolio/database"
	"portfolio/providers"
	"portfolio/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKey = "k3y"

// stubMetadata answers every DOI with the same record.
type stubMetadata struct {
	meta *providers.Metadata
}

func (m stubMetadata) Name() string { return "stub" }

func (m stubMetadata) Lookup(ctx context.Context, doi string) (*providers.Metadata, error) {
	if m.meta == nil {
		return nil, providers.ErrNoRecord
	}
	meta := *m.meta
	meta.DOI = doi
	return &meta, nil
}

func newTestAPI(t *testing.T) (*httptest.Server, api.Deps) {
	t.Helper()
	return newTestAPIWithLookup(t, stubMetadata{})
}

func newTestAPIWithLookup(t *testing.T, metadata providers.MetadataProvider) (*httptest.Server, api.Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		DBDriver:     "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "ctl.db"),
		DBLogLevel:   "silent",
		APISecretKey: testKey,
	}
	log := zap.NewNop()
	db, err := database.Open(cfg, log)
	require.NoError(t, err)

	deps := api.Deps{
		Projects: services.NewProjectService(db, log),
		Blog:     services.NewBlogService(db, log),
		Research: services.NewResearchService(db, log),
		Messages: services.NewMessageService(db, log),
		Lookup:   services.NewLookupService(metadata, nil, log),
	}
	router := gin.New()
	api.Register(router, cfg, deps, log)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, deps
}

func run(t *testing.T, url, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--url", url, "--api-key", testKey}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateAndList(t *testing.T) {
	srv, deps := newTestAPI(t)

	out, err := run(t, srv.URL, `{"title":"Hello","slug":"hello","excerpt":"e","content":"c"}`, "create", "blog")
	require.NoError(t, err)
	assert.Contains(t, out, "blog: create ok")

	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"CLI","description":"d","image":"/i.png","techStack":["Go","Cobra"]}`), 0o600))
	_, err = run(t, srv.URL, "", "create", "projects", "-f", path)
	require.NoError(t, err)

	out, err = run(t, srv.URL, "", "list", "blog")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "no")

	out, err = run(t, srv.URL, "", "ls", "projects")
	require.NoError(t, err)
	assert.Contains(t, out, "Go, Cobra")

	posts, err := deps.Blog.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestUpdate(t *testing.T) {
	srv, deps := newTestAPI(t)
	p, err := deps.Blog.Create(context.Background(), services.BlogPostInput{Title: "A", Slug: "a", Excerpt: "e", Content: "c"})
	require.NoError(t, err)

	_, err = run(t, srv.URL, `{"title":"B","slug":"a","excerpt":"e","content":"c","published":true}`, "update", "blog", "1")
	require.NoError(t, err)

	got, err := deps.Blog.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)
	assert.True(t, got.Published)
}

func TestCreateValidationError(t *testing.T) {
	srv, _ := newTestAPI(t)
	_, err := run(t, srv.URL, `{"title":"only"}`, "create", "projects")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestDeletePrompts(t *testing.T) {
	srv, deps := newTestAPI(t)
	ctx := context.Background()
	m, err := deps.Messages.Create(ctx, services.MessageInput{Name: "A", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)

	out, err := run(t, srv.URL, "n\n", "delete", "messages", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	_, err = deps.Messages.Get(ctx, m.ID)
	require.NoError(t, err)

	out, err = run(t, srv.URL, "yes\n", "delete", "messages", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted messages 1.")
	_, err = deps.Messages.Get(ctx, m.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteYesFlag(t *testing.T) {
	srv, deps := newTestAPI(t)
	_, err := deps.Projects.Create(context.Background(), services.ProjectInput{Title: "P", Description: "d", Image: "/i.png", TechStack: []string{"Go"}})
	require.NoError(t, err)

	out, err := run(t, srv.URL, "", "delete", "projects", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted projects 1.")
}

func TestWrongAPIKey(t *testing.T) {
	srv, _ := newTestAPI(t)
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"--url", srv.URL, "--api-key", "nope", "list", "messages"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestArgumentErrors(t *testing.T) {
	srv, _ := newTestAPI(t)

	_, err := run(t, srv.URL, "", "list", "widgets")
	assert.Error(t, err)

	_, err = run(t, srv.URL, "{}", "create", "messages")
	assert.Error(t, err)

	_, err = run(t, srv.URL, "", "delete", "blog", "abc", "--yes")
	assert.Error(t, err)

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"--url", "", "list", "blog"})
	assert.Error(t, cmd.Execute())
}

func TestLookupCreate(t *testing.T) {
	srv, deps := newTestAPIWithLookup(t, stubMetadata{meta: &providers.Metadata{
		Title:    "Graph Methods",
		Authors:  "Doe J, Roe R",
		Year:     2021,
		Abstract: "We study graphs.",
	}})

	out, err := run(t, srv.URL, "", "lookup", "10.1/x")
	require.NoError(t, err)
	assert.Contains(t, out, `"slug": "graph-methods"`)

	out, err = run(t, srv.URL, "", "lookup", "10.1/x", "--create")
	require.NoError(t, err)
	assert.Contains(t, out, `Created draft "graph-methods".`)

	items, err := deps.Research.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Published)
	assert.Equal(t, "We study graphs.", items[0].Content)
	require.NotNil(t, items[0].DOI)
	assert.Equal(t, "10.1/x", *items[0].DOI)
}

func TestLookupCreateWithoutAbstract(t *testing.T) {
	srv, deps := newTestAPIWithLookup(t, stubMetadata{meta: &providers.Metadata{Title: "Bare Record"}})

	_, err := run(t, srv.URL, "", "lookup", "10.1/bare", "--create")
	require.NoError(t, err)

	items, err := deps.Research.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bare Record", items[0].Excerpt)
	assert.Equal(t, "Unknown Authors (n.d.). Bare Record. doi:10.1/bare", items[0].Content)
}

func TestLookupUnknownDOI(t *testing.T) {
	srv, _ := newTestAPI(t)
	_, err := run(t, srv.URL, "", "lookup", "10.1/none")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
