// Package storage stores delivery attachments in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"strings"

	"romaneio/config"
	"romaneio/internal/domain/service"
	"romaneio/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers for the bucket URL schemes supported in config.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the attachment bucket named by the configuration and closes it
// on shutdown.
func New(params Params) (service.AttachmentStorage, error) {
	cfg := params.Config.Attachments
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("attachments bucket URL is not configured")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachments bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the blob under key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open attachment writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write attachment")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish attachment upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously uploaded blob by key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete attachment")
	}

	return nil
}
