package photo

import (
	"context"
	"io"
	"time"
)

// MockStore implements Store for unit tests.
type MockStore struct {
	Error    error
	Uploaded []string
}

// Upload records the derived object name and returns a fake public URL.
func (m *MockStore) Upload(_ context.Context, contentType string, r io.Reader) (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	name, err := ObjectName(time.Now().UTC(), contentType)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	m.Uploaded = append(m.Uploaded, name)
	return PublicURL("test-bucket", name), nil
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
