package dashboard

import "github.com/quantiv/isi-web/pkg/entitlement"

type variant int

const (
	// variantHide swaps the area for the locked panel.
	variantHide variant = iota
	// variantOverlay keeps the area visible but inert under an overlay.
	variantOverlay
	// variantTeaser shows a short teaser instead of the locked panel.
	variantTeaser
)

// area is one plan-gated section of the dashboard.
type area struct {
	feature     entitlement.Feature
	title       string
	description string
	variant     variant
	teaser      string
	tooltip     string

	// supersededBy hides the area for plans holding any of these features.
	supersededBy []entitlement.Feature
}

func (a area) visible(c entitlement.Capabilities) bool {
	for _, f := range a.supersededBy {
		if c.HasFeature(f) {
			return false
		}
	}
	return true
}

var areas = []area{
	{
		feature:     entitlement.FeatureInteractiveDashboard,
		title:       "Interactive Dashboard",
		description: "Filter, pivot and drill into the index across countries.",
		variant:     variantHide,
	},
	{
		feature:      entitlement.FeatureBasicISI,
		title:        "ISI Snapshot",
		description:  "Weekly stability index for your tracked countries.",
		variant:      variantHide,
		supersededBy: []entitlement.Feature{
			entitlement.FeatureDailyISI,
			entitlement.FeatureRealtimeISI,
		},
	},
	{
		feature:      entitlement.FeatureDailyISI,
		title:        "Daily ISI",
		description:  "Stability index refreshed every day.",
		variant:      variantOverlay,
		supersededBy: []entitlement.Feature{entitlement.FeatureRealtimeISI},
	},
	{
		feature:     entitlement.FeatureRealtimeISI,
		title:       "Realtime ISI",
		description: "Live index updates as events are scored.",
		variant:     variantOverlay,
	},
	{
		feature:     entitlement.FeatureMETI,
		title:       "METI",
		description: "Macro-economic tension indicators.",
		variant:     variantHide,
	},
	{
		feature:     entitlement.FeatureSentimentPulse,
		title:       "Sentiment Pulse",
		description: "Media and social sentiment per country.",
		variant:     variantTeaser,
		teaser:      "Sentiment Pulse shows how coverage of each country is trending.",
	},
	{
		feature:     entitlement.FeatureNarrativeGeneration,
		title:       "Narratives",
		description: "Generated briefings explaining index movements.",
		variant:     variantOverlay,
		tooltip:     "Generated narratives are part of paid plans.",
	},
	{
		feature:     entitlement.FeatureAPIAccess,
		title:       "API",
		description: "Programmatic access to index data.",
		variant:     variantHide,
	},
	{
		feature:     entitlement.FeatureHighVolumeAPI,
		title:       "High-volume API",
		description: "Raised rate limits and bulk endpoints.",
		variant:     variantHide,
	},
	{
		feature:     entitlement.FeatureDataExport,
		title:       "Export",
		description: "Download index history as CSV.",
		variant:     variantOverlay,
	},
	{
		feature:     entitlement.FeatureCustomReports,
		title:       "Custom Reports",
		description: "Build and schedule your own reports.",
		variant:     variantHide,
	},
	{
		feature:     entitlement.FeatureCustomModels,
		title:       "Custom Models",
		description: "Tune the index weighting to your exposure.",
		variant:     variantHide,
	},
}

func findArea(f entitlement.Feature) (area, bool) {
	for _, a := range areas {
		if a.feature == f {
			return a, true
		}
	}
	return area{}, false
}
