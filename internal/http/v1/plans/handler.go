package plans

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/melodicname/api/internal/platform/auth"
	plansvc "github.com/melodicname/api/internal/service/plan"
	profilesvc "github.com/melodicname/api/internal/service/profile"
)

// SubscribeInput for POST /plans/{name}/subscribe
type SubscribeInput struct {
	Name string `path:"name" doc:"Plan name" example:"Premium"`
}

// Register wires plan routes into the provided API router.
func Register(api huma.API, profiles profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-plans",
		Method:      http.MethodGet,
		Path:        "/plans",
		Summary:     "List available plans",
		Description: "Returns the static plan catalog.",
		Tags:        []string{"Plans"},
	}, func(_ context.Context, _ *struct{}) (*PlansListOutput, error) {
		catalog := plansvc.Catalog()
		out := make([]Plan, 0, len(catalog))
		for _, p := range catalog {
			out = append(out, toHTTPPlan(p))
		}
		return &PlansListOutput{
			Body: PlansData{Plans: out},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "subscribe-plan",
		Method:      http.MethodPost,
		Path:        "/plans/{name}/subscribe",
		Summary:     "Subscribe to a plan",
		Description: "Grants the plan's entitlements to the authenticated user. No payment is processed.",
		Tags:        []string{"Plans"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error) {
		user := auth.UserFromContext(ctx)

		p, err := plansvc.ByName(input.Name)
		if err != nil {
			return nil, huma.Error404NotFound("unknown plan")
		}

		updated, err := profiles.Upgrade(ctx, user.UID, p.Songs)
		if err != nil {
			if errors.Is(err, profilesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("profile not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &SubscribeOutput{
			Body: Entitlements{
				PlanName:           p.Name,
				IsPremium:          updated.IsPremium,
				FreeSongsRemaining: updated.FreeSongsRemaining,
			},
		}, nil
	})
}
