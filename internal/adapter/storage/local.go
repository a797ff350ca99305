package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Local writes objects below a directory on disk.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a store rooted at dir whose objects are served under baseURL.
func NewLocal(dir, baseURL string) *Local {
	return &Local{dir: dir, baseURL: baseURL}
}

// Dir returns the root directory, used to mount the file server.
func (l *Local) Dir() string { return l.dir }

// Put writes data to dir/key, creating parent directories as needed.
func (l *Local) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}

	return joinURL(l.baseURL, key), nil
}

// Delete removes dir/key. A missing file is ignored.
func (l *Local) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(l.dir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
