// internal/authz/plan.go
package authz

import (
	"strings"

	"github.com/fathomcrm/fathom/internal/model"
)

// planLevels is the single source of truth for the plan hierarchy.
var planLevels = map[model.PlanName]int{
	model.PlanFree:    0,
	model.PlanBasic:   1,
	model.PlanPremium: 2,
}

// planOrder lists plans from lowest to highest tier.
var planOrder = []model.PlanName{model.PlanFree, model.PlanBasic, model.PlanPremium}

// PlanLevel returns the hierarchy level of a plan, or unknownLevel for any
// name outside the closed set.
func PlanLevel(plan model.PlanName) int {
	if lvl, ok := planLevels[plan]; ok {
		return lvl
	}
	return unknownLevel
}

// PlanMeets reports whether have meets or exceeds want. An unrecognized
// required plan can never be satisfied.
func PlanMeets(have, want model.PlanName) bool {
	wantLevel, ok := planLevels[want]
	if !ok {
		return false
	}
	return PlanLevel(have) >= wantLevel
}

// IsDowngrade classifies a plan change. Equal tiers and upgrades are not
// downgrades; a change to an unknown plan is treated as a downgrade so it
// always goes through impact analysis.
func IsDowngrade(current, target model.PlanName) bool {
	return PlanLevel(target) < PlanLevel(current)
}

// PlansAtLeast returns every plan that would satisfy the given minimum, in
// ascending tier order. Used to build actionable insufficiency messages.
func PlansAtLeast(min model.PlanName) []model.PlanName {
	minLevel, ok := planLevels[min]
	if !ok {
		return nil
	}
	var plans []model.PlanName
	for _, p := range planOrder {
		if planLevels[p] >= minLevel {
			plans = append(plans, p)
		}
	}
	return plans
}

func joinPlans(plans []model.PlanName) string {
	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
