package gate

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/quantiv/isi-web/pkg/entitlement"
)

// decision is everything a variant needs to render its locked branch.
type decision struct {
	feature     entitlement.Feature
	entitled    bool
	featureName string
	message     string
}

func decide(planID string, feature entitlement.Feature) decision {
	caps := entitlement.Resolve(planID)
	return decision{
		feature:     feature,
		entitled:    caps.HasFeature(feature),
		featureName: entitlement.FeatureDisplayName(feature),
		message:     caps.FeatureUpgradeMessage(feature),
	}
}

// Feature renders children when the plan grants feature. Otherwise it renders
// the fallback if one was given, or the default locked panel, or nothing when
// the upgrade prompt is switched off.
func Feature(planID string, feature entitlement.Feature, children templ.Component, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := decide(planID, feature)
		switch {
		case d.entitled:
			return render(ctx, w, children)
		case cfg.fallback != nil:
			return cfg.fallback.Render(ctx, w)
		case !cfg.upgradePrompt:
			return nil
		default:
			return lockedPanel(d, cfg.upgradeURL).Render(ctx, w)
		}
	})
}

// LockBadge renders nothing when the plan grants feature, and a small lock
// badge otherwise. The badge links to the upgrade URL unless WithOnClick is set.
func LockBadge(planID string, feature entitlement.Feature, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := decide(planID, feature)
		if d.entitled {
			return nil
		}
		return lockBadge(d, cfg).Render(ctx, w)
	})
}

// Overlay renders children when the plan grants feature. Otherwise children
// are rendered inert beneath an overlay carrying the upgrade message (or the
// WithTooltip text) and an upgrade link.
func Overlay(planID string, feature entitlement.Feature, children templ.Component, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := decide(planID, feature)
		if d.entitled {
			return render(ctx, w, children)
		}
		msg := d.message
		if cfg.tooltip != "" {
			msg = cfg.tooltip
		}
		return overlay(d, msg, cfg.upgradeURL, children).Render(ctx, w)
	})
}

// Entitled reports whether a gate for feature would open for planID.
func Entitled(planID string, feature entitlement.Feature) bool {
	return decide(planID, feature).entitled
}

func render(ctx context.Context, w io.Writer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}
