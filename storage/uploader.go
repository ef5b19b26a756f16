package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"portfolio/config"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxUploadSize is the largest accepted image.
const MaxUploadSize = 10 << 20

// ErrUnsupportedType is returned for anything that is not an image.
var ErrUnsupportedType = errors.New("only image uploads are allowed")

var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/avif":    ".avif",
}

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// New returns the uploader selected by STORAGE_DRIVER.
func New(cfg *config.Config, logger *zap.Logger) (Uploader, error) {
	switch cfg.StorageDriver {
	case "s3":
		client, err := NewS3Client(cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Uploader(client, cfg, logger), nil
	case "local", "":
		return NewLocalUploader(cfg.UploadDir, cfg.UploadBaseURL, logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// CheckContentType rejects non-image content types.
func CheckContentType(contentType string) error {
	if _, ok := imageExtensions[baseType(contentType)]; !ok {
		return ErrUnsupportedType
	}
	return nil
}

func baseType(contentType string) string {
	ct, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}

// ObjectKey builds the stored name "images/<unix>_<base>" for an upload.
func ObjectKey(name, contentType string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}
	ext := strings.ToLower(path.Ext(base))
	stem := strings.TrimSuffix(base, path.Ext(base))
	stem = strings.Trim(sanitizeName(stem), "-")
	if stem == "" {
		stem = "image"
	}
	if ext == "" {
		ext = imageExtensions[baseType(contentType)]
	}
	return fmt.Sprintf("images/%d_%s%s", now.Unix(), stem, ext)
}

// sanitizeName folds accents ("Café" -> "cafe") and replaces everything outside
// [a-z0-9_-] with '-'.
func sanitizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
