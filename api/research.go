package api

import (
	"net/http"

	"portfolio/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupResearchRoutes(api *gin.RouterGroup, svc *services.ResearchService, lookup *services.LookupService, admin gin.HandlerFunc, log *zap.Logger) {
	rg := api.Group("/research")

	rg.GET("", func(c *gin.Context) {
		items, err := svc.ListPublished(c.Request.Context())
		if err != nil {
			respondError(c, log, "Failed to fetch research", err, "")
			return
		}
		c.JSON(http.StatusOK, items)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in services.ResearchInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		item, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, log, "Failed to create research", err, "", zap.String("slug", in.Slug))
			return
		}
		c.JSON(http.StatusCreated, item)
	})

	rg.GET("/:slug", func(c *gin.Context) {
		slug := c.Param("slug")
		item, err := svc.GetPublished(c.Request.Context(), slug)
		if err != nil {
			respondError(c, log, "Failed to fetch research", err, "Research not found", zap.String("slug", slug))
			return
		}
		c.JSON(http.StatusOK, item)
	})

	adminGroup := rg.Group("/admin", admin)

	adminGroup.GET("", func(c *gin.Context) {
		items, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, log, "Failed to fetch research", err, "")
			return
		}
		c.JSON(http.StatusOK, items)
	})

	if lookup != nil {
		adminGroup.GET("/lookup", func(c *gin.Context) {
			doi := c.Query("doi")
			draft, err := lookup.LookupDOI(c.Request.Context(), doi)
			if err != nil {
				respondError(c, log, "DOI lookup failed", err, "No metadata found for DOI", zap.String("doi", doi))
				return
			}
			c.JSON(http.StatusOK, draft)
		})
	}

	adminGroup.GET("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to fetch research", err, "")
			return
		}
		item, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, log, "Failed to fetch research", err, "Research not found", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, item)
	})

	adminGroup.PUT("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to update research", err, "")
			return
		}
		var in services.ResearchInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		item, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, log, "Failed to update research", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, item)
	})

	adminGroup.DELETE("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to delete research", err, "")
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, log, "Failed to delete research", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Research deleted successfully"})
	})
}
