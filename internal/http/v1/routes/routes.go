package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	planhandler "github.com/melodicname/api/internal/http/v1/plans"
	profilehandler "github.com/melodicname/api/internal/http/v1/profile"
	songhandler "github.com/melodicname/api/internal/http/v1/songs"
	"github.com/melodicname/api/internal/platform/auth"
	"github.com/melodicname/api/internal/service/photo"
	profilesvc "github.com/melodicname/api/internal/service/profile"
	songsvc "github.com/melodicname/api/internal/service/songrequest"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	profileService profilesvc.Service,
	songService songsvc.Service,
	photoStore photo.Store,
) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	profilehandler.Register(api, profileService)
	songhandler.Register(api, songService, photoStore, prefix)
	planhandler.Register(api, profileService)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
