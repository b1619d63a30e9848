package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/melodicname/api/internal/platform/auth"
	"github.com/melodicname/api/internal/platform/timeutil"
	profilesvc "github.com/melodicname/api/internal/service/profile"
)

// Register registers profile endpoints.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get current user's profile",
		Description: "Retrieves the authenticated user's profile. A first visit creates the profile with one free song.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*ProfileGetOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := svc.Resolve(ctx, user.UID, user.Email)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{
			Body: toHTTPProfile(p),
		}, nil
	})
}

func mapServiceError(err error) error {
	if errors.Is(err, profilesvc.ErrNotFound) {
		return huma.Error404NotFound("profile not found")
	}
	return huma.Error500InternalServerError("internal error")
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		ID:                 p.ID,
		Email:              p.Email,
		FreeSongsRemaining: p.FreeSongsRemaining,
		IsPremium:          p.IsPremium,
		CreatedAt:          timeutil.Time{Time: p.CreatedAt},
		UpdatedAt:          timeutil.Time{Time: p.UpdatedAt},
	}
}
