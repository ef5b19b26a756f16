package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"portfolio/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalError = "Internal server error"

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", c.Param("id"), err)
	}
	return uint(id), nil
}

// respondError writes the JSON error for err. notFound is the 404 message; an
// empty notFound means a missing record is treated as an internal error.
func respondError(c *gin.Context, log *zap.Logger, msg string, err error, notFound string, fields ...zap.Field) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already exists"})
	case errors.Is(err, services.ErrNotFound) && notFound != "":
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		log.Error(msg, append(fields, zap.Error(err))...)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalError})
	}
}

func invalidBody(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("Invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
