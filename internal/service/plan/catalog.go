package plan

import (
	"errors"
	"strings"
)

// ErrUnknownPlan indicates the requested plan name is not in the catalog.
var ErrUnknownPlan = errors.New("unknown plan")

// UnlimitedSongs is the allowance sentinel for plans without a song cap.
// It is advisory only; the premium flag is the authoritative signal that a
// profile is never quota-gated.
const UnlimitedSongs = -1

// Plan describes one paid tier.
type Plan struct {
	Name        string
	Price       string
	Songs       int
	Description string
	Features    []string
	Popular     bool
}

// Unlimited reports whether the plan carries no song cap.
func (p Plan) Unlimited() bool {
	return p.Songs == UnlimitedSongs
}

// catalog is the static tier list. There is no payment integration;
// subscribing grants the entitlements directly.
var catalog = []Plan{
	{
		Name:        "Basic",
		Price:       "₹499",
		Songs:       5,
		Description: "Perfect for beginners starting their musical journey",
		Features:    []string{"5 Songs", "Standard Quality", "Email Support"},
	},
	{
		Name:        "Premium",
		Price:       "₹999",
		Songs:       15,
		Description: "Ideal for music enthusiasts and semi-professionals",
		Features:    []string{"15 Songs", "High Quality", "Priority Support", "Custom Requests"},
		Popular:     true,
	},
	{
		Name:        "Professional",
		Price:       "₹1999",
		Songs:       UnlimitedSongs,
		Description: "For professional musicians and commercial use",
		Features: []string{
			"Unlimited Songs",
			"Highest Quality",
			"24/7 Support",
			"Custom Requests",
			"Commercial License",
		},
	},
}

// Catalog returns the full tier list.
func Catalog() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a plan case-insensitively.
func ByName(name string) (Plan, error) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}
