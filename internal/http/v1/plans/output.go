package plans

// PlansData models the static plan catalog payload.
type PlansData struct {
	Plans []Plan `json:"plans" doc:"Available paid tiers"`
}

// PlansListOutput for GET /plans
type PlansListOutput struct {
	Body PlansData
}

// Entitlements models the profile state after an upgrade.
type Entitlements struct {
	PlanName           string `json:"planName"           doc:"Granted plan"                    example:"Premium"`
	IsPremium          bool   `json:"isPremium"          doc:"Premium flag after the upgrade"  example:"true"`
	FreeSongsRemaining int    `json:"freeSongsRemaining" doc:"Song allowance after the upgrade, -1 meaning unlimited" example:"15"`
}

// SubscribeOutput for POST /plans/{name}/subscribe
type SubscribeOutput struct {
	Body Entitlements
}
