package api

import (
	"net/http"

	"portfolio/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupContactRoutes(api *gin.RouterGroup, svc *services.MessageService, admin gin.HandlerFunc, log *zap.Logger) {
	rg := api.Group("/contact")

	rg.POST("", func(c *gin.Context) {
		var in services.MessageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			invalidBody(c, log, err)
			return
		}
		msg, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, log, "Contact form error", err, "")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": msg.ID})
	})

	rg.GET("", admin, func(c *gin.Context) {
		messages, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, log, "Failed to fetch messages", err, "")
			return
		}
		c.JSON(http.StatusOK, messages)
	})

	rg.GET("/:id", admin, func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to fetch message", err, "")
			return
		}
		msg, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, log, "Failed to fetch message", err, "Message not found", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, msg)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, log, "Failed to delete message", err, "")
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, log, "Failed to delete message", err, "", zap.Uint("id", id))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})
}
