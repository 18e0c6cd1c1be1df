package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/storage"
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidFileType = errors.New("invalid file type, upload PNG, JPG, or WebP")
	ErrFileTooLarge    = errors.New("file too large")
)

var allowedDesignTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

type UploadResult struct {
	URL  string
	Path string
	// Fallback is set when the design could not be stored and the URL is
	// a base64 data URL instead of a storage location.
	Fallback bool
}

type UploadService struct {
	store   storage.DesignStore
	maxSize int64
}

func NewUploadService(store storage.DesignStore, maxSizeMB int64) *UploadService {
	return &UploadService{store: store, maxSize: maxSizeMB << 20}
}

// SaveDesign validates and stores an uploaded design image. A storage
// failure is not fatal: the design comes back as an inline data URL so the
// customer can keep going.
func (s *UploadService) SaveDesign(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, ErrNoFile
	}
	if !allowedDesignTypes[contentType] {
		return nil, ErrInvalidFileType
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxSize)
	}

	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "png"
	}
	key := fmt.Sprintf("designs/%s/%d.%s", userID, time.Now().UnixMilli(), ext)

	url, err := s.store.Save(ctx, key, data)
	if err != nil {
		dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
		return &UploadResult{URL: dataURL, Fallback: true}, nil
	}
	return &UploadResult{URL: url, Path: key}, nil
}
