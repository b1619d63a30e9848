package songrequest

import (
	"context"
	"errors"
	"slices"
	"time"
)

// Service errors
var (
	ErrNotFound        = errors.New("song request not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrQuotaExhausted  = errors.New("no free songs remaining")
	ErrInvalidGenre    = errors.New("unknown genre")
)

// Status of a song request. The only transition is pending -> completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Genres is the fixed set a request must choose from.
var Genres = []string{
	"Romantic",
	"Motivational",
	"Pop",
	"Rock",
	"Hip Hop",
	"Classical",
	"Jazz",
	"Folk",
	"Electronic",
}

// ValidGenre reports whether g is one of the fixed genres.
func ValidGenre(g string) bool {
	return slices.Contains(Genres, g)
}

// SongRequest is one song-creation order submitted by a user.
type SongRequest struct {
	ID              string
	UserID          string
	ArtistName      string
	Recipient       string
	Genre           string
	SongName        string
	Whatsapp        string
	Email           string
	PhotoURL        string
	AdditionalNotes string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SubmitParams for creating a song request. PhotoURL is resolved by the
// caller before submission (object storage upload happens first; a failed
// upload aborts the whole submission).
type SubmitParams struct {
	ArtistName      string
	Recipient       string
	Genre           string
	SongName        string
	Whatsapp        string
	Email           string
	PhotoURL        string
	AdditionalNotes string
}

// EventType classifies a change-feed notification.
type EventType string

const (
	EventAdded    EventType = "added"
	EventModified EventType = "modified"
	EventRemoved  EventType = "removed"
)

// Event is one change notification for a user's song requests. Consumers
// re-fetch the full list rather than applying deltas; the event only says
// that something changed and which document it was.
type Event struct {
	Type      EventType
	RequestID string
}

// Service defines song request operations.
type Service interface {
	// Submit creates a request with status pending and, for non-premium
	// users, decrements the free-song allowance. Check and decrement are
	// atomic: a submission either creates exactly one request or leaves
	// all state untouched. Exhausted quota yields ErrQuotaExhausted.
	Submit(ctx context.Context, uid string, params SubmitParams) (*SongRequest, error)

	// List returns the user's requests, newest first.
	List(ctx context.Context, uid string) ([]*SongRequest, error)

	// MarkReceived transitions one request to completed. Marking an
	// already-completed request succeeds without a state change. Requests
	// owned by other users are indistinguishable from missing ones.
	MarkReceived(ctx context.Context, uid, id string) (*SongRequest, error)

	// Watch streams change events for the user's requests until ctx is
	// done. The returned channel is closed when the stream ends.
	Watch(ctx context.Context, uid string) (<-chan Event, error)
}
