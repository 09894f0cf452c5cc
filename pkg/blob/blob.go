// Package blob stages uploaded media into object storage.
package blob

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"vidtube/pkg/logger"
	"vidtube/pkg/media"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store is an object store that can ingest a file from local disk.
type Store interface {
	PutFile(ctx context.Context, key, localPath, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Result struct {
	URL      string
	Key      string
	Duration float64
}

// Uploader moves a staged local file into the store and probes video length.
type Uploader struct {
	store  Store
	prober media.Prober
	logger *logger.Logger
}

func NewUploader(store Store, prober media.Prober, log *logger.Logger) *Uploader {
	return &Uploader{store: store, prober: prober, logger: log}
}

// Upload stores localPath under a fresh key in folder. The local file is removed
// whether or not the upload succeeds.
func (u *Uploader) Upload(ctx context.Context, localPath, folder, contentType string) (*Result, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			u.logger.Warn("Failed to remove staged file %s: %v", localPath, err)
		}
	}()

	if localPath == "" {
		return nil, errors.New("no file to upload")
	}

	result := &Result{Key: ObjectKey(folder, localPath)}

	if strings.HasPrefix(contentType, "video/") && u.prober != nil {
		d, err := u.prober.Duration(ctx, localPath)
		if err != nil {
			u.logger.Warn("Failed to probe duration of %s: %v", localPath, err)
		} else {
			result.Duration = d
		}
	}

	url, err := u.store.PutFile(ctx, result.Key, localPath, contentType)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to upload %s", result.Key)
	}
	result.URL = url

	return result, nil
}

func (u *Uploader) Delete(ctx context.Context, key string) error {
	return u.store.Delete(ctx, key)
}

// ObjectKey builds folder/<uuid><ext>, keeping the extension of the staged file.
func ObjectKey(folder, localPath string) string {
	ext := strings.ToLower(filepath.Ext(localPath))
	key := uuid.New().String() + ext
	if folder == "" {
		return key
	}
	return strings.Trim(folder, "/") + "/" + key
}

// KeyFromURL recovers the object key of a URL returned by PutFile for an object
// stored under folder. It reports false for URLs this store did not produce.
func KeyFromURL(objectURL, folder string) (string, bool) {
	u, err := url.Parse(objectURL)
	if err != nil {
		return "", false
	}
	folder = strings.Trim(folder, "/")
	marker := "/" + folder + "/"
	i := strings.LastIndex(u.Path, marker)
	if i < 0 {
		return "", false
	}
	name := u.Path[i+len(marker):]
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return folder + "/" + name, true
}
