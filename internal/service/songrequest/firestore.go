package songrequest

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/melodicname/api/internal/platform/logging"
	profilesvc "github.com/melodicname/api/internal/service/profile"
)

// Collection holds one document per song request.
const Collection = "song_requests"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrProfileNotFound):
		return "profile_not_found"
	case errors.Is(err, ErrQuotaExhausted):
		return "quota_exhausted"
	case errors.Is(err, ErrInvalidGenre):
		return "invalid_genre"
	default:
		return "internal_error"
	}
}

// firestoreRequest maps to the Firestore document structure.
type firestoreRequest struct {
	UserID          string    `firestore:"user_id"`
	ArtistName      string    `firestore:"artist_name"`
	Recipient       string    `firestore:"recipient"`
	Genre           string    `firestore:"genre"`
	SongName        string    `firestore:"song_name"`
	Whatsapp        string    `firestore:"whatsapp"`
	Email           string    `firestore:"email"`
	PhotoURL        string    `firestore:"photo_url"`
	AdditionalNotes string    `firestore:"additional_notes"`
	Status          string    `firestore:"status"`
	CreatedAt       time.Time `firestore:"created_at"`
	UpdatedAt       time.Time `firestore:"updated_at"`
}

func (fr *firestoreRequest) toSongRequest(id string) *SongRequest {
	return &SongRequest{
		ID:              id,
		UserID:          fr.UserID,
		ArtistName:      fr.ArtistName,
		Recipient:       fr.Recipient,
		Genre:           fr.Genre,
		SongName:        fr.SongName,
		Whatsapp:        fr.Whatsapp,
		Email:           fr.Email,
		PhotoURL:        fr.PhotoURL,
		AdditionalNotes: fr.AdditionalNotes,
		Status:          Status(fr.Status),
		CreatedAt:       fr.CreatedAt,
		UpdatedAt:       fr.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Submit creates the request document and decrements the owner's free-song
// allowance in one transaction. The profile is re-read inside the
// transaction, so two near-simultaneous submissions cannot both spend the
// last free song.
func (s *FirestoreStore) Submit(ctx context.Context, uid string, params SubmitParams) (*SongRequest, error) {
	if !ValidGenre(params.Genre) {
		return nil, ErrInvalidGenre
	}

	profileRef := s.client.Collection(profilesvc.Collection).Doc(uid)
	requestRef := s.client.Collection(Collection).Doc(uuid.NewString())

	var result *SongRequest

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		profileDoc, err := tx.Get(profileRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrProfileNotFound
			}
			return err
		}

		var remaining int64
		isPremium := false
		if v, err := profileDoc.DataAt("free_songs_remaining"); err == nil {
			remaining, _ = v.(int64)
		}
		if v, err := profileDoc.DataAt("is_premium"); err == nil {
			isPremium, _ = v.(bool)
		}

		if !isPremium && remaining <= 0 {
			return ErrQuotaExhausted
		}

		now := time.Now().UTC()
		fr := firestoreRequest{
			UserID:          uid,
			ArtistName:      params.ArtistName,
			Recipient:       params.Recipient,
			Genre:           params.Genre,
			SongName:        params.SongName,
			Whatsapp:        params.Whatsapp,
			Email:           params.Email,
			PhotoURL:        params.PhotoURL,
			AdditionalNotes: params.AdditionalNotes,
			Status:          string(StatusPending),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Create(requestRef, fr); err != nil {
			return err
		}

		if !isPremium {
			if err := tx.Update(profileRef, []firestore.Update{
				{Path: "free_songs_remaining", Value: remaining - 1},
				{Path: "updated_at", Value: now},
			}); err != nil {
				return err
			}
		}

		result = fr.toSongRequest(requestRef.ID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", uid, "song_request", requestRef.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", uid, "song_request", result.ID, "success",
		map[string]any{"genre": result.Genre})
	return result, nil
}

// List returns the user's requests ordered newest first.
func (s *FirestoreStore) List(ctx context.Context, uid string) ([]*SongRequest, error) {
	// Requires the composite index (user_id ASC, created_at DESC).
	iter := s.client.Collection(Collection).
		Where("user_id", "==", uid).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var requests []*SongRequest
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var fr firestoreRequest
		if err := doc.DataTo(&fr); err != nil {
			return nil, err
		}
		requests = append(requests, fr.toSongRequest(doc.Ref.ID))
	}
	return requests, nil
}

// MarkReceived transitions a request to completed inside a transaction.
// A second invocation finds the request already completed and succeeds
// without writing.
func (s *FirestoreStore) MarkReceived(ctx context.Context, uid, id string) (*SongRequest, error) {
	requestRef := s.client.Collection(Collection).Doc(id)

	var result *SongRequest
	changed := false

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(requestRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fr firestoreRequest
		if err := doc.DataTo(&fr); err != nil {
			return err
		}
		if fr.UserID != uid {
			return ErrNotFound
		}

		if fr.Status == string(StatusCompleted) {
			result = fr.toSongRequest(id)
			return nil
		}

		fr.Status = string(StatusCompleted)
		fr.UpdatedAt = time.Now().UTC()
		if err := tx.Set(requestRef, fr); err != nil {
			return err
		}
		changed = true
		result = fr.toSongRequest(id)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "complete", uid, "song_request", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	if changed {
		applog.LogAuditEvent(ctx, "complete", uid, "song_request", id, "success", nil)
	}
	return result, nil
}

// Watch streams change events for the user's requests via a Firestore
// snapshot listener. The listener is stopped and the channel closed when
// ctx is canceled.
func (s *FirestoreStore) Watch(ctx context.Context, uid string) (<-chan Event, error) {
	snapshots := s.client.Collection(Collection).
		Where("user_id", "==", uid).
		Snapshots(ctx)

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					applog.LogError(ctx, "song request snapshot stream failed", err)
				}
				return
			}
			for _, change := range snap.Changes {
				var et EventType
				switch change.Kind {
				case firestore.DocumentAdded:
					et = EventAdded
				case firestore.DocumentModified:
					et = EventModified
				case firestore.DocumentRemoved:
					et = EventRemoved
				}
				select {
				case events <- Event{Type: et, RequestID: change.Doc.Ref.ID}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
