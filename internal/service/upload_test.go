package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDesignStore struct {
	saved map[string][]byte
	fail  bool
}

func newMockDesignStore() *mockDesignStore {
	return &mockDesignStore{saved: make(map[string][]byte)}
}

func (m *mockDesignStore) Save(_ context.Context, key string, data []byte) (string, error) {
	if m.fail {
		return "", errors.New("disk full")
	}
	m.saved[key] = data
	return "http://localhost:8080/uploads/" + key, nil
}

func TestUploadService_SaveDesign(t *testing.T) {
	store := newMockDesignStore()
	svc := NewUploadService(store, 10)
	userID := uuid.New()

	result, err := svc.SaveDesign(context.Background(), userID, "logo.png", "image/png", []byte("fake png"))
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.True(t, strings.HasPrefix(result.Path, "designs/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(result.Path, ".png"))
	assert.Len(t, store.saved, 1)
}

func TestUploadService_SaveDesign_EmptyFile(t *testing.T) {
	svc := NewUploadService(newMockDesignStore(), 10)
	_, err := svc.SaveDesign(context.Background(), uuid.New(), "logo.png", "image/png", nil)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestUploadService_SaveDesign_BadType(t *testing.T) {
	svc := NewUploadService(newMockDesignStore(), 10)
	_, err := svc.SaveDesign(context.Background(), uuid.New(), "sheet.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestUploadService_SaveDesign_TooLarge(t *testing.T) {
	svc := NewUploadService(newMockDesignStore(), 1)
	big := make([]byte, 1<<20+1)
	_, err := svc.SaveDesign(context.Background(), uuid.New(), "huge.png", "image/png", big)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadService_SaveDesign_FallbackOnStorageFailure(t *testing.T) {
	store := newMockDesignStore()
	store.fail = true
	svc := NewUploadService(store, 10)

	result, err := svc.SaveDesign(context.Background(), uuid.New(), "logo.webp", "image/webp", []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.True(t, strings.HasPrefix(result.URL, "data:image/webp;base64,"))
	assert.Empty(t, result.Path)
}

func TestUploadService_SaveDesign_DefaultExtension(t *testing.T) {
	store := newMockDesignStore()
	svc := NewUploadService(store, 10)

	result, err := svc.SaveDesign(context.Background(), uuid.New(), "design", "image/png", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Path, ".png"))
}
