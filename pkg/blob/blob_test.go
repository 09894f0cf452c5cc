package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) PutFile(ctx context.Context, key, localPath, contentType string) (string, error) {
	args := m.Called(key, localPath, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	return m.Called(key).Error(0)
}

type stubProber struct {
	duration float64
	err      error
}

func (p stubProber) Duration(ctx context.Context, path string) (float64, error) {
	return p.duration, p.err
}

func stageFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))
	return path
}

func TestUpload_Video(t *testing.T) {
	store := new(MockStore)
	uploader := NewUploader(store, stubProber{duration: 42.5}, logger.NewNop())
	path := stageFile(t, "clip.MP4")

	store.On("PutFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "videos/") && strings.HasSuffix(key, ".mp4")
	}), path, "video/mp4").Return("https://cdn.example.com/videos/x.mp4", nil)

	result, err := uploader.Upload(context.Background(), path, "videos", "video/mp4")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/videos/x.mp4", result.URL)
	assert.Equal(t, 42.5, result.Duration)
	assert.NoFileExists(t, path)
	store.AssertExpectations(t)
}

func TestUpload_ImageIsNotProbed(t *testing.T) {
	store := new(MockStore)
	uploader := NewUploader(store, stubProber{err: errors.New("must not be called")}, logger.NewNop())
	path := stageFile(t, "thumb.png")

	store.On("PutFile", mock.Anything, path, "image/png").Return("https://cdn.example.com/t.png", nil)

	result, err := uploader.Upload(context.Background(), path, "thumbnails", "image/png")

	require.NoError(t, err)
	assert.Zero(t, result.Duration)
}

func TestUpload_ProbeFailureKeepsUpload(t *testing.T) {
	store := new(MockStore)
	uploader := NewUploader(store, stubProber{err: errors.New("ffprobe missing")}, logger.NewNop())
	path := stageFile(t, "clip.mp4")

	store.On("PutFile", mock.Anything, path, "video/mp4").Return("https://cdn.example.com/v.mp4", nil)

	result, err := uploader.Upload(context.Background(), path, "videos", "video/mp4")

	require.NoError(t, err)
	assert.Zero(t, result.Duration)
	assert.Equal(t, "https://cdn.example.com/v.mp4", result.URL)
}

func TestUpload_StoreFailureRemovesStagedFile(t *testing.T) {
	store := new(MockStore)
	uploader := NewUploader(store, nil, logger.NewNop())
	path := stageFile(t, "clip.mp4")

	store.On("PutFile", mock.Anything, path, "video/mp4").Return("", errors.New("bucket unavailable"))

	result, err := uploader.Upload(context.Background(), path, "videos", "video/mp4")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoFileExists(t, path)
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("/videos/", "/tmp/upload-123.MOV")
	assert.True(t, strings.HasPrefix(key, "videos/"))
	assert.True(t, strings.HasSuffix(key, ".mov"))

	assert.NotContains(t, ObjectKey("", "a.jpg"), "/")
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
		ok   bool
	}{
		{"path style", "http://localhost:9000/vidtube/thumbnails/abc.jpg", "thumbnails/abc.jpg", true},
		{"virtual hosted", "https://vidtube.s3.us-east-1.amazonaws.com/thumbnails/abc.jpg", "thumbnails/abc.jpg", true},
		{"other folder", "https://vidtube.s3.us-east-1.amazonaws.com/videos/abc.mp4", "", false},
		{"foreign url", "https://cataas.com/cat", "", false},
		{"nested", "http://localhost:9000/vidtube/thumbnails/a/b.jpg", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := KeyFromURL(tt.url, "thumbnails")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestUploader_Delete(t *testing.T) {
	store := new(MockStore)
	uploader := NewUploader(store, nil, logger.NewNop())
	store.On("Delete", "thumbnails/abc.jpg").Return(nil).Once()
	store.On("Delete", "thumbnails/gone.jpg").Return(errors.New("no such key")).Once()

	require.NoError(t, uploader.Delete(context.Background(), "thumbnails/abc.jpg"))
	assert.Error(t, uploader.Delete(context.Background(), "thumbnails/gone.jpg"))
	store.AssertExpectations(t)
}
