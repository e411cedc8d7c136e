package gate

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func lockedPanel(d decision, upgradeURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="feature-locked" data-feature="`)
		b.WriteString(templ.EscapeString(d.feature.String()))
		b.WriteString(`"><h3 class="feature-locked__title">`)
		b.WriteString(templ.EscapeString(d.featureName + " Locked"))
		b.WriteString(`</h3><p class="feature-locked__message">`)
		b.WriteString(templ.EscapeString(d.message))
		b.WriteString(`</p>`)
		writeUpgradeLink(&b, "feature-locked__cta", upgradeURL)
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func lockBadge(d decision, cfg *config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		title := templ.EscapeString(d.message)
		if cfg.onClick != "" {
			b.WriteString(`<button type="button" class="lock-badge" title="`)
			b.WriteString(title)
			b.WriteString(`" data-on-click="`)
			b.WriteString(templ.EscapeString(cfg.onClick))
			b.WriteString(`">Locked</button>`)
		} else {
			b.WriteString(`<a class="lock-badge" title="`)
			b.WriteString(title)
			b.WriteString(`" href="`)
			b.WriteString(templ.EscapeString(string(templ.URL(cfg.upgradeURL))))
			b.WriteString(`">Locked</a>`)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func overlay(d decision, message, upgradeURL string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<div class="feature-overlay" data-feature="` + templ.EscapeString(d.feature.String()) +
			`"><div class="feature-overlay__content" inert aria-disabled="true">`
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if err := render(ctx, w, children); err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`</div><div class="feature-overlay__mask" role="note"><p class="feature-overlay__message">`)
		b.WriteString(templ.EscapeString(message))
		b.WriteString(`</p>`)
		writeUpgradeLink(&b, "feature-overlay__cta", upgradeURL)
		b.WriteString(`</div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeUpgradeLink(b *strings.Builder, class, upgradeURL string) {
	b.WriteString(`<a class="`)
	b.WriteString(class)
	b.WriteString(`" href="`)
	b.WriteString(templ.EscapeString(string(templ.URL(upgradeURL))))
	b.WriteString(`">Upgrade plan</a>`)
}
