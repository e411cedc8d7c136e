package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantiv/isi-web/pkg/entitlement"
	"github.com/quantiv/isi-web/pkg/gate"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// pageData is what every view needs to know about the current request.
type pageData struct {
	appName    string
	planID     string
	caps       entitlement.Capabilities
	upgradeURL string
	preview    bool
	usage      usage
}

// usage is the caller's current consumption of metered limits.
type usage struct {
	countries int64
	seats     int64
}

var (
	esc     = templ.EscapeString[string]
	numbers = message.NewPrinter(language.English)
)

// count formats n with thousands separators.
func count(n int64) string {
	return numbers.Sprintf("%d", n)
}

func component(fn func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return fn(w)
	})
}

func layout(title string, d pageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s | %s</title><script type="module" src="%s"></script></head><body>`,
			esc(title), esc(d.appName), datastarScript)
		if err != nil {
			return err
		}
		if err := header(d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="layout">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</div></body></html>`)
		return err
	})
}

func header(d pageData) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<header id="header" class="header"><a class="header__brand" href="/">%s</a>`+
			`<span class="plan-badge plan-badge--%s">%s</span>`,
			esc(d.appName), esc(d.caps.PlanTier.String()), esc(d.caps.PlanDisplayName))
		if err != nil {
			return err
		}
		if d.preview {
			if err := planSwitcher(w, d.caps.PlanTier); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</header>`)
		return err
	})
}

func planSwitcher(w io.Writer, current entitlement.Tier) error {
	_, err := fmt.Fprintf(w, `<form class="plan-switcher" method="post" action="/plan" `+
		`data-signals-plan="'%s'" data-on-submit="@post('/plan')"><select name="plan" data-bind-plan>`,
		esc(current.String()))
	if err != nil {
		return err
	}
	for _, t := range entitlement.Tiers() {
		selected := ""
		if t == current {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(t.String()), selected, esc(t.DisplayName())); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, `</select><button type="submit">Preview</button></form>`)
	return err
}

func sidebar(d pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav id="sidebar" class="sidebar"><ul>`); err != nil {
			return err
		}
		for _, a := range areas {
			if !a.visible(d.caps) {
				continue
			}
			_, err := fmt.Fprintf(w, `<li class="sidebar__item"><a href="/features/%s">%s</a>`,
				esc(a.feature.String()), esc(a.title))
			if err != nil {
				return err
			}
			badge := gate.LockBadge(d.planID, a.feature, gate.WithUpgradeURL(d.upgradeURL))
			if err := badge.Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></nav>`)
		return err
	})
}

func areaCard(a area) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="feature-card" id="area-%s"><h2>%s</h2><p>%s</p></section>`,
			esc(a.feature.String()), esc(a.title), esc(a.description))
		return err
	})
}

func teaser(a area) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="feature-card feature-card--teaser"><h2>%s</h2><p>%s</p></section>`,
			esc(a.title), esc(a.teaser))
		return err
	})
}

// gatedArea wraps an area's card in the gate its variant calls for.
func gatedArea(d pageData, a area) templ.Component {
	card := areaCard(a)
	switch a.variant {
	case variantOverlay:
		return gate.Overlay(d.planID, a.feature, card,
			gate.WithTooltip(a.tooltip), gate.WithUpgradeURL(d.upgradeURL))
	case variantTeaser:
		return gate.Feature(d.planID, a.feature, card,
			gate.WithFallback(teaser(a)), gate.WithUpgradeURL(d.upgradeURL))
	default:
		return gate.Feature(d.planID, a.feature, card, gate.WithUpgradeURL(d.upgradeURL))
	}
}

func featureGrid(d pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main id="features" class="features">`); err != nil {
			return err
		}
		for _, a := range areas {
			if !a.visible(d.caps) {
				continue
			}
			if err := gatedArea(d, a).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := usageSummary(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

func limitText(used, ceiling, left int64, unlimited bool) string {
	if unlimited {
		return count(used) + " of unlimited"
	}
	return count(used) + " of " + count(ceiling) + ", " + count(left) + " left"
}

func usageSummary(d pageData) templ.Component {
	return component(func(w io.Writer) error {
		c := d.caps
		countriesLeft, unlimitedCountries := entitlement.RemainingCountries(c, d.usage.countries)
		if _, err := fmt.Fprintf(w, `<section id="usage" class="usage"><h2>Usage</h2>`+
			`<p class="usage__countries">Countries: %s</p>`,
			esc(limitText(d.usage.countries, c.MaxCountries, countriesLeft, unlimitedCountries))); err != nil {
			return err
		}

		switch {
		case !c.CanAccessCountryCount(d.usage.countries):
			if _, err := fmt.Fprintf(w, `<p class="usage__warning">Your selection exceeds the %s plan limit. <a href="%s">Upgrade plan</a></p>`,
				esc(c.PlanDisplayName), esc(string(templ.URL(d.upgradeURL)))); err != nil {
				return err
			}
		case !unlimitedCountries && countriesLeft == 0:
			if _, err := io.WriteString(w, `<p class="usage__notice">Country limit reached.</p>`); err != nil {
				return err
			}
		}

		seatsLeft, unlimitedSeats := entitlement.RemainingSeats(c, d.usage.seats)
		if _, err := fmt.Fprintf(w, `<p class="usage__seats">Seats: %s</p>`,
			esc(limitText(d.usage.seats, c.MaxUsers, seatsLeft, unlimitedSeats))); err != nil {
			return err
		}
		if c.CanAddUser(d.usage.seats) {
			_, err := io.WriteString(w, `<button type="button" class="usage__invite">Invite teammate</button></section>`)
			return err
		}
		_, err := fmt.Fprintf(w, `<p class="usage__notice">Seat limit reached. <a href="%s">Upgrade plan</a></p></section>`,
			esc(string(templ.URL(d.upgradeURL))))
		return err
	})
}

func dashboardPage(d pageData) templ.Component {
	return layout("Dashboard", d, templ.Join(sidebar(d), featureGrid(d)))
}

func featurePage(d pageData, a area) templ.Component {
	return layout(a.title, d, templ.Join(sidebar(d), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main id="features" class="features features--single">`); err != nil {
			return err
		}
		if err := gatedArea(d, a).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})))
}

func notFoundPage(d pageData) templ.Component {
	return layout("Not found", d, component(func(w io.Writer) error {
		_, err := io.WriteString(w, `<main class="not-found"><h1>Not found</h1><a href="/">Back to dashboard</a></main>`)
		return err
	}))
}

func upgradePage(d pageData) templ.Component {
	return layout("Upgrade", d, component(func(w io.Writer) error {
		current := d.caps
		if current.PlanTier == entitlement.TierEnterprise {
			_, err := io.WriteString(w, `<main id="upgrade" class="upgrade"><h1>You are on the Enterprise plan</h1>`+
				`<p>Every feature is unlocked.</p></main>`)
			return err
		}

		next := entitlement.Catalog(current.PlanTier.Next())
		cmp := entitlement.Compare(current, next)
		if _, err := fmt.Fprintf(w, `<main id="upgrade" class="upgrade"><h1>Upgrade to %s</h1><h2>Unlocks</h2><ul class="upgrade__gains">`,
			esc(next.PlanDisplayName)); err != nil {
			return err
		}
		for _, f := range cmp.NewFeatures {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, esc(f.DisplayName())); err != nil {
				return err
			}
		}
		for _, l := range []entitlement.Limit{entitlement.LimitCountries, entitlement.LimitUsers} {
			change, ok := cmp.IncreasedLimits[l]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, `<li>%s: %s</li>`, esc(limitLabel(l)), esc(limitValue(change.To))); err != nil {
				return err
			}
		}
		if cmp.SupportChanged {
			if _, err := fmt.Fprintf(w, `<li>Support: %s</li>`, esc(string(cmp.SupportLevelTo))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}

		if cmp.HasLosses() {
			if _, err := io.WriteString(w, `<h2>Replaced</h2><ul class="upgrade__replaced">`); err != nil {
				return err
			}
			for _, f := range cmp.LostFeatures {
				if _, err := fmt.Fprintf(w, `<li>%s</li>`, esc(f.DisplayName())); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	}))
}

func limitLabel(l entitlement.Limit) string {
	switch l {
	case entitlement.LimitCountries:
		return "Countries"
	case entitlement.LimitUsers:
		return "Users"
	default:
		return string(l)
	}
}

func limitValue(v int64) string {
	if v == entitlement.Unlimited {
		return "unlimited"
	}
	return count(v)
}
