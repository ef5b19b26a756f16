package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"portfolio/api"
	"portfolio/config"
	"portfolio/database"
	"portfolio/logging"
	"portfolio/providers"
	"portfolio/providers/europepmc"
	"portfolio/providers/unpaywall"
	"portfolio/services"
	"portfolio/storage"
	"portfolio/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database handle", zap.Error(err))
	}
	logger.Info("Database ready", zap.String("driver", cfg.DBDriver))

	// Setup Providers
	var pdfs providers.PDFLocator
	if cfg.UnpaywallEmail != "" {
		pdfs = unpaywall.NewFetcher(cfg, logger)
	} else {
		logger.Warn("UNPAYWALL_EMAIL not set, DOI lookups will not search for open-access PDFs")
	}
	lookup := services.NewLookupService(europepmc.NewFetcher(cfg, logger), pdfs, logger)

	uploader, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatal("Upload storage setup failed", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	// Setup Services
	projects := services.NewProjectService(db, logger)
	blog := services.NewBlogService(db, logger)
	research := services.NewResearchService(db, logger)
	messages := services.NewMessageService(db, logger)

	profile, err := web.LoadProfile(cfg.ProfilePath)
	if err != nil {
		logger.Fatal("Failed to load profile", zap.Error(err))
	}

	// Setup Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogger(logger))
	if cfg.StorageDriver == "local" && strings.HasPrefix(cfg.UploadBaseURL, "/") {
		router.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	api.Register(router, cfg, api.Deps{
		Projects: projects,
		Blog:     blog,
		Research: research,
		Messages: messages,
		Lookup:   lookup,
		Uploader: uploader,
		Ping:     sqlDB.PingContext,
	}, logger)

	site, err := web.New(cfg, profile, web.Deps{
		Projects: projects,
		Blog:     blog,
		Research: research,
		Messages: messages,
		Lookup:   lookup,
		Uploader: uploader,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}
	site.Register(router)

	if cfg.APISecretKey == "" {
		logger.Warn("API_SECRET_KEY not set, admin endpoints and dashboard are unprotected")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.HTTPPort), zap.String("admin", cfg.AdminPrefix()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}
}
