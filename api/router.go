package api

import (
	"context"
	"net/http"

	"portfolio/config"
	"portfolio/services"
	"portfolio/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps bundles what the JSON API needs.
type Deps struct {
	Projects *services.ProjectService
	Blog     *services.BlogService
	Research *services.ResearchService
	Messages *services.MessageService
	Lookup   *services.LookupService
	Uploader storage.Uploader
	// Ping reports database health for /healthz.
	Ping func(ctx context.Context) error
}

// Register mounts /api, /metrics and /healthz on router.
func Register(router *gin.Engine, cfg *config.Config, deps Deps, log *zap.Logger) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		if deps.Ping != nil {
			if err := deps.Ping(c.Request.Context()); err != nil {
				log.Error("Health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rg := router.Group("/api")
	admin := APIKeyAuth(cfg.APISecretKey)

	setupProjectRoutes(rg, deps.Projects, admin, log)
	setupBlogRoutes(rg, deps.Blog, admin, log)
	setupResearchRoutes(rg, deps.Research, deps.Lookup, admin, log)
	setupContactRoutes(rg, deps.Messages, admin, log)
	if deps.Uploader != nil {
		setupUploadRoutes(rg, deps.Uploader, admin, log)
	}
}
