package photo

import (
	"context"
	"fmt"
	"io"
	"time"

	fbstorage "firebase.google.com/go/v4/storage"

	applog "github.com/melodicname/api/internal/platform/logging"
)

// GCSStore implements Store on top of the Firebase Cloud Storage client.
type GCSStore struct {
	client *fbstorage.Client
	bucket string
}

// NewGCSStore creates a store writing to the named bucket.
func NewGCSStore(client *fbstorage.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

// Upload writes the blob to the bucket and returns its public URL.
func (s *GCSStore) Upload(ctx context.Context, contentType string, r io.Reader) (string, error) {
	name, err := ObjectName(time.Now().UTC(), contentType)
	if err != nil {
		return "", err
	}

	bucket, err := s.client.Bucket(s.bucket)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	w := bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	applog.LogInfo(ctx, "photo uploaded")
	return PublicURL(s.bucket, name), nil
}

// PublicURL resolves a previously uploaded object's public address.
func PublicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}

// Compile-time interface check
var _ Store = (*GCSStore)(nil)
