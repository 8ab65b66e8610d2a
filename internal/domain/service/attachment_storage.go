package service

import (
	"context"
	"io"
)

// AttachmentStorage stores delivery attachments (prescriptions, payment
// proofs) and returns the public URL saved on the delivery record.
type AttachmentStorage interface {
	// Upload writes the blob under key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes a previously uploaded blob by key.
	Delete(ctx context.Context, key string) error
}
