package entitlement

import "context"

// Resolve returns the capability record for a plan identifier.
// It never fails: an empty or unknown identifier resolves to the free plan.
func Resolve(planID string) Capabilities {
	return catalog[ParseTier(planID)]
}

// ResolveContext resolves the plan identifier stored by WithPlanID.
// A context without one resolves to the free plan.
func ResolveContext(ctx context.Context) Capabilities {
	planID, _ := PlanIDFromContext(ctx)
	return Resolve(planID)
}
