package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/melodicname/api/internal/platform/logging"
)

// Collection holds one document per user, keyed by Firebase UID.
const Collection = "user_profiles"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "internal_error"
}

// firestoreProfile maps to the Firestore document structure.
type firestoreProfile struct {
	Email              string    `firestore:"email"`
	FreeSongsRemaining int       `firestore:"free_songs_remaining"`
	IsPremium          bool      `firestore:"is_premium"`
	CreatedAt          time.Time `firestore:"created_at"`
	UpdatedAt          time.Time `firestore:"updated_at"`
}

func (fp *firestoreProfile) toProfile(uid string) *Profile {
	return &Profile{
		ID:                 uid,
		Email:              fp.Email,
		FreeSongsRemaining: fp.FreeSongsRemaining,
		IsPremium:          fp.IsPremium,
		CreatedAt:          fp.CreatedAt,
		UpdatedAt:          fp.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client      *firestore.Client
	signupSongs int
}

// NewFirestoreStore creates a new Firestore-backed store. signupSongs is the
// free-song allowance granted on first visit.
func NewFirestoreStore(client *firestore.Client, signupSongs int) *FirestoreStore {
	return &FirestoreStore{client: client, signupSongs: signupSongs}
}

// Resolve returns the profile for uid, creating the default one inside a
// transaction so two concurrent first visits converge on a single document.
func (s *FirestoreStore) Resolve(ctx context.Context, uid, email string) (*Profile, error) {
	docRef := s.client.Collection(Collection).Doc(uid)

	var result *Profile
	created := false

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			var fp firestoreProfile
			if err := doc.DataTo(&fp); err != nil {
				return err
			}
			result = fp.toProfile(uid)
			return nil
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		now := time.Now().UTC()
		fp := firestoreProfile{
			Email:              strings.ToLower(strings.TrimSpace(email)),
			FreeSongsRemaining: s.signupSongs,
			IsPremium:          false,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		created = true
		result = fp.toProfile(uid)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "resolve", uid, "profile", uid, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	if created {
		applog.LogAuditEvent(ctx, "create", uid, "profile", uid, "success", nil)
	}
	return result, nil
}

// Get retrieves a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, uid string) (*Profile, error) {
	doc, err := s.client.Collection(Collection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return fp.toProfile(uid), nil
}

// Upgrade sets the premium flag and the plan's song allowance in one
// transaction.
func (s *FirestoreStore) Upgrade(ctx context.Context, uid string, songs int) (*Profile, error) {
	docRef := s.client.Collection(Collection).Doc(uid)

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return err
		}

		fp.IsPremium = true
		fp.FreeSongsRemaining = songs
		fp.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		result = fp.toProfile(uid)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "upgrade", uid, "profile", uid, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "upgrade", uid, "profile", uid, "success",
		map[string]any{"songs": songs})
	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
