package api

import (
	"net/http"

	"portfolio/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupProjectRoutes(api *gin.RouterGroup, svc *services.ProjectService, admin gin.HandlerFunc, log *zap.Logger) {
	rg := api.Group("/projects")

	rg.GET("", func(c *gin.Context) {
		projects, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, log, "Failed to fetch projects", err, "")
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in services.ProjectInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		project, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, log, "Failed to create project", err, "")
			return
		}
		c.JSON(http.StatusCreated, project)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to fetch project", err, "")
			return
		}
		project, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, log, "Failed to fetch project", err, "Project not found", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, project)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to update project", err, "")
			return
		}
		var in services.ProjectInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		project, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, log, "Failed to update project", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, project)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to delete project", err, "")
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, log, "Failed to delete project", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	})
}
