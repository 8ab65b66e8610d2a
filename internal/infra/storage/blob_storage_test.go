package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	_ "gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStorage{bucket: bucket, publicBaseURL: "https://anexos.example.com"}
}

func TestBlobStorage_UploadReturnsPublicURL(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	url, err := storage.Upload(ctx, "entregas/abc/receita.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://anexos.example.com/entregas/abc/receita.jpg", url)

	stored, err := storage.bucket.ReadAll(ctx, "entregas/abc/receita.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))
}

func TestBlobStorage_DeleteRemovesBlob(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Upload(ctx, "entregas/abc/comprovante.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "entregas/abc/comprovante.jpg"))

	_, err = storage.bucket.ReadAll(ctx, "entregas/abc/comprovante.jpg")
	assert.Equal(t, gcerrors.NotFound, gcerrors.Code(err))
}
