package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LocalUploader writes uploads below Dir and serves them under BaseURL.
type LocalUploader struct {
	Dir     string
	BaseURL string
	Logger  *zap.Logger
	now     func() time.Time
}

func NewLocalUploader(dir, baseURL string, logger *zap.Logger) *LocalUploader {
	return &LocalUploader{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), Logger: logger, now: time.Now}
}

func (u *LocalUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := CheckContentType(contentType); err != nil {
		return "", err
	}
	key := ObjectKey(name, contentType, u.now())
	dst := filepath.Join(u.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, io.LimitReader(r, MaxUploadSize)); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	u.Logger.Info("Stored upload locally", zap.String("key", key))
	return u.BaseURL + "/" + key, nil
}
