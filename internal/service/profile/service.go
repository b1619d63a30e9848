package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var ErrNotFound = errors.New("profile not found")

// Profile tracks a user's remaining free songs and premium status.
type Profile struct {
	ID                 string
	Email              string
	FreeSongsRemaining int
	IsPremium          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Entitled reports whether the profile may submit another song request.
// A premium profile is always entitled; the numeric allowance is advisory
// for premium users (unlimited plans carry a -1 sentinel).
func (p *Profile) Entitled() bool {
	return p.IsPremium || p.FreeSongsRemaining > 0
}

// Service defines profile operations.
type Service interface {
	// Resolve returns the profile for uid, creating one with the signup
	// free-song allowance when none exists. A missing profile is a first
	// visit, not an error.
	Resolve(ctx context.Context, uid, email string) (*Profile, error)

	// Get retrieves an existing profile.
	Get(ctx context.Context, uid string) (*Profile, error)

	// Upgrade grants a plan's entitlements: the premium flag plus its song
	// allowance (-1 meaning unlimited). There is no payment step; this is a
	// direct entitlement grant.
	Upgrade(ctx context.Context, uid string, songs int) (*Profile, error)
}
