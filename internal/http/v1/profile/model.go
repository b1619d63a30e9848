package profile

import (
	"github.com/melodicname/api/internal/platform/timeutil"
)

// Profile represents a user profile response.
type Profile struct {
	ID                 string        `json:"id"                 doc:"User identifier"                 example:"user-123"`
	Email              string        `json:"email"              doc:"Email address"                   example:"john@example.com"`
	FreeSongsRemaining int           `json:"freeSongsRemaining" doc:"Remaining free song submissions" example:"1"`
	IsPremium          bool          `json:"isPremium"          doc:"Whether a paid plan is active"   example:"false"`
	CreatedAt          timeutil.Time `json:"createdAt"          doc:"Creation timestamp"              example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt          timeutil.Time `json:"updatedAt"          doc:"Last update timestamp"           example:"2024-01-15T10:30:00.000Z"`
}
