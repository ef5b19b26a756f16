package api

import (
	"net/http"

	"portfolio/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupBlogRoutes(api *gin.RouterGroup, svc *services.BlogService, admin gin.HandlerFunc, log *zap.Logger) {
	rg := api.Group("/blog")

	rg.GET("", func(c *gin.Context) {
		posts, err := svc.ListPublished(c.Request.Context())
		if err != nil {
			respondError(c, log, "Failed to fetch blog posts", err, "")
			return
		}
		c.JSON(http.StatusOK, posts)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in services.BlogPostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		post, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, log, "Failed to create blog post", err, "", zap.String("slug", in.Slug))
			return
		}
		c.JSON(http.StatusCreated, post)
	})

	rg.GET("/:slug", func(c *gin.Context) {
		slug := c.Param("slug")
		post, err := svc.GetPublished(c.Request.Context(), slug)
		if err != nil {
			respondError(c, log, "Failed to fetch blog post", err, "Blog post not found", zap.String("slug", slug))
			return
		}
		c.JSON(http.StatusOK, post)
	})

	adminGroup := rg.Group("/admin", admin)

	adminGroup.GET("", func(c *gin.Context) {
		posts, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, log, "Failed to fetch blog posts", err, "")
			return
		}
		c.JSON(http.StatusOK, posts)
	})

	adminGroup.GET("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to fetch blog post", err, "")
			return
		}
		post, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, log, "Failed to fetch blog post", err, "Blog post not found", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, post)
	})

	adminGroup.PUT("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to update blog post", err, "")
			return
		}
		var in services.BlogPostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		post, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, log, "Failed to update blog post", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, post)
	})

	adminGroup.DELETE("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to delete blog post", err, "")
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, log, "Failed to delete blog post", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
	})
}
