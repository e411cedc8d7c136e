package entitlement

import (
	"context"
	"log/slog"
)

type planIDCtxKey struct{}

// WithPlanID stores the caller's plan identifier in the context.
func WithPlanID(ctx context.Context, planID string) context.Context {
	return context.WithValue(ctx, planIDCtxKey{}, planID)
}

// PlanIDFromContext returns the plan identifier stored by WithPlanID.
func PlanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	planID, ok := ctx.Value(planIDCtxKey{}).(string)
	return planID, ok
}

// LoggerExtractor returns a logger context extractor that adds the resolved plan tier.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if planID, ok := PlanIDFromContext(ctx); ok {
			return slog.String("plan", ParseTier(planID).String()), true
		}
		return slog.Attr{}, false
	}
}
