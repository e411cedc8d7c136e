package gate

import "github.com/a-h/templ"

// DefaultUpgradeURL is where upgrade links point unless overridden.
const DefaultUpgradeURL = "/upgrade"

type config struct {
	fallback      templ.Component
	upgradePrompt bool
	onClick       string
	tooltip       string
	upgradeURL    string
}

func newConfig(opts []Option) *config {
	cfg := &config{
		upgradePrompt: true,
		upgradeURL:    DefaultUpgradeURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a gate.
type Option func(*config)

// WithFallback renders c instead of the locked panel when the plan lacks the feature.
// Nil is ignored.
func WithFallback(c templ.Component) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.fallback = c
		}
	}
}

// WithUpgradePrompt toggles the default locked panel. With the prompt off and
// no fallback, a locked Feature gate renders nothing.
func WithUpgradePrompt(show bool) Option {
	return func(cfg *config) { cfg.upgradePrompt = show }
}

// WithOnClick sets the datastar expression run when a lock badge is clicked,
// e.g. "@get('/upgrade/modal')". Without it the badge links to the upgrade URL.
func WithOnClick(expr string) Option {
	return func(cfg *config) { cfg.onClick = expr }
}

// WithTooltip replaces the derived upgrade message on an overlay.
// Empty strings are ignored.
func WithTooltip(text string) Option {
	return func(cfg *config) {
		if text != "" {
			cfg.tooltip = text
		}
	}
}

// WithUpgradeURL changes the upgrade destination. Empty strings are ignored.
func WithUpgradeURL(url string) Option {
	return func(cfg *config) {
		if url != "" {
			cfg.upgradeURL = url
		}
	}
}
