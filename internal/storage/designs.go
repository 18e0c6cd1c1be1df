// Package storage persists uploaded design images and hands back public
// URLs for them.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/config"
)

// DesignStore saves a design blob under a key and returns a public URL.
type DesignStore interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
}

// DiskStore writes designs to a local directory served under a public
// base URL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(cfg config.UploadsConfig) *DiskStore {
	return &DiskStore{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}
}

func (s *DiskStore) Save(_ context.Context, key string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write design file: %w", err)
	}
	return s.baseURL + "/" + key, nil
}
