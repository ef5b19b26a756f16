package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"portfolio/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupUploadRoutes(api *gin.RouterGroup, uploader storage.Uploader, admin gin.HandlerFunc, log *zap.Logger) {
	api.POST("/uploads", admin, func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxUploadSize+1<<20)

		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		if fh.Size > storage.MaxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			respondError(c, log, "Failed to open upload", err, "")
			return
		}
		defer f.Close()

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
			head := make([]byte, 512)
			n, _ := io.ReadFull(f, head)
			contentType = http.DetectContentType(head[:n])
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				respondError(c, log, "Failed to rewind upload", err, "")
				return
			}
		}

		url, err := uploader.Upload(c.Request.Context(), fh.Filename, contentType, f)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedType) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are allowed"})
				return
			}
			respondError(c, log, "Upload failed", err, "", zap.String("filename", fh.Filename))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	})
}
