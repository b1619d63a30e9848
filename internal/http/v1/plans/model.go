package plans

import (
	plansvc "github.com/melodicname/api/internal/service/plan"
)

// Plan represents one paid tier response.
type Plan struct {
	Name        string   `json:"name"        doc:"Plan name"                                example:"Premium"`
	Price       string   `json:"price"       doc:"Monthly price"                            example:"₹999"`
	Songs       int      `json:"songs"       doc:"Song allowance, -1 meaning unlimited"     example:"15"`
	Description string   `json:"description" doc:"Short pitch"`
	Features    []string `json:"features"    doc:"Included features"`
	Popular     bool     `json:"popular"     doc:"Highlighted tier"                         example:"true"`
}

func toHTTPPlan(p plansvc.Plan) Plan {
	return Plan{
		Name:        p.Name,
		Price:       p.Price,
		Songs:       p.Songs,
		Description: p.Description,
		Features:    p.Features,
		Popular:     p.Popular,
	}
}
