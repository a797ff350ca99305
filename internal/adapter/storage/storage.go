// Package storage implements recipe image stores: a local directory served
// by the HTTP server and an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/config"
)

// Store persists an object under key and returns its public URL.
// Delete of a missing key is not an error.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	if cfg.IsS3() {
		return NewS3(ctx, cfg)
	}
	return NewLocal(cfg.LocalDir, cfg.PublicBaseURL), nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

func validKey(key string) error {
	if key == "" || strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
