package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"portfolio/config"
	"portfolio/database"
	"portfolio/services"
	"portfolio/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	deps   Deps
	dir    string
}

func newTestServer(t *testing.T, apiKey string) *testServer {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DBDriver:     "sqlite",
		SQLitePath:   filepath.Join(dir, "api.db"),
		DBLogLevel:   "silent",
		APISecretKey: apiKey,
	}
	log := zap.NewNop()
	db, err := database.Open(cfg, log)
	require.NoError(t, err)

	deps := Deps{
		Projects: services.NewProjectService(db, log),
		Blog:     services.NewBlogService(db, log),
		Research: services.NewResearchService(db, log),
		Messages: services.NewMessageService(db, log),
		Uploader: storage.NewLocalUploader(filepath.Join(dir, "uploads"), "/uploads", log),
	}
	router := gin.New()
	router.Use(RequestLogger(log))
	Register(router, cfg, deps, log)
	return &testServer{router: router, deps: deps, dir: dir}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, w)["error"]
}
