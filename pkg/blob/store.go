package blob

import (
	"context"

	"vidtube/pkg/config"
	"vidtube/pkg/s3"
)

// NewStore returns the store selected by cfg.BlobDriver: "minio" for a MinIO
// server, anything else for S3 or an S3-compatible endpoint.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.BlobDriver == "minio" {
		return NewMinioStore(ctx, cfg)
	}
	return s3.NewClient(cfg)
}

var (
	_ Store = (*MinioStore)(nil)
	_ Store = (*s3.Client)(nil)
)
