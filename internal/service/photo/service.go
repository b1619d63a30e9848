package photo

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
)

// Service errors
var (
	// ErrUpload wraps object storage failures. A failed upload aborts the
	// whole submission; no request is created.
	ErrUpload = errors.New("photo upload failed")

	// ErrUnsupportedType indicates a non-image content type.
	ErrUnsupportedType = errors.New("unsupported photo type")
)

// extensions maps accepted image content types to object name extensions.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store uploads photo blobs and resolves their public address.
type Store interface {
	// Upload stores the blob and returns its public URL. The object name
	// is derived from the upload time plus the content type's extension.
	Upload(ctx context.Context, contentType string, r io.Reader) (string, error)
}

// ObjectName derives a storage object name from a timestamp and content
// type, e.g. "1712345678901.jpg".
func ObjectName(now time.Time, contentType string) (string, error) {
	ext, ok := extensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", ErrUnsupportedType
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + ext, nil
}
