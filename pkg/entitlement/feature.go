package entitlement

import (
	"strings"
	"unicode"
)

// Feature names one boolean capability flag. Limits and plan metadata are
// deliberately not features, so gates can only ever be keyed on booleans.
type Feature string

const (
	FeatureInteractiveDashboard Feature = "hasInteractiveDashboard"
	FeatureBasicISI             Feature = "hasBasicISI"
	FeatureDailyISI             Feature = "hasDailyISI"
	FeatureRealtimeISI          Feature = "hasRealtimeISI"
	FeatureMETI                 Feature = "hasMETI"
	FeatureSentimentPulse       Feature = "hasSentimentPulse"
	FeatureNarrativeGeneration  Feature = "hasNarrativeGeneration"

	FeatureAPIAccess     Feature = "hasAPIAccess"
	FeatureHighVolumeAPI Feature = "hasHighVolumeAPI"
	FeatureDataExport    Feature = "hasDataExport"
	FeatureCustomReports Feature = "hasCustomReports"
	FeatureCustomModels  Feature = "hasCustomModels"
)

var features = []Feature{
	FeatureInteractiveDashboard,
	FeatureBasicISI,
	FeatureDailyISI,
	FeatureRealtimeISI,
	FeatureMETI,
	FeatureSentimentPulse,
	FeatureNarrativeGeneration,
	FeatureAPIAccess,
	FeatureHighVolumeAPI,
	FeatureDataExport,
	FeatureCustomReports,
	FeatureCustomModels,
}

// Features returns every feature key, feature flags first, then access flags.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// ParseFeature matches s exactly against the known feature keys.
func ParseFeature(s string) (Feature, error) {
	f := Feature(s)
	if !f.Valid() {
		return "", ErrUnknownFeature
	}
	return f, nil
}

// Valid reports whether f is one of the known feature keys.
func (f Feature) Valid() bool {
	_, ok := flagAccessors[f]
	return ok
}

// DisplayName returns the UI label derived from the key.
func (f Feature) DisplayName() string {
	return FeatureDisplayName(f)
}

func (f Feature) String() string {
	return string(f)
}

// FeatureDisplayName derives a label from a feature key: the leading "has" is
// dropped and a space goes in front of every upper-case letter. The split is
// intentionally naive, so acronyms come out spaced ("hasRealtimeISI" becomes
// "Realtime I S I") to match the labels already shipped in the UI.
func FeatureDisplayName(f Feature) string {
	name := strings.TrimPrefix(string(f), "has")

	var b strings.Builder
	b.Grow(len(name) * 2)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// flagAccessors maps each feature to the record field it reads.
var flagAccessors = map[Feature]func(Capabilities) bool{
	FeatureInteractiveDashboard: func(c Capabilities) bool { return c.InteractiveDashboard },
	FeatureBasicISI:             func(c Capabilities) bool { return c.BasicISI },
	FeatureDailyISI:             func(c Capabilities) bool { return c.DailyISI },
	FeatureRealtimeISI:          func(c Capabilities) bool { return c.RealtimeISI },
	FeatureMETI:                 func(c Capabilities) bool { return c.METI },
	FeatureSentimentPulse:       func(c Capabilities) bool { return c.SentimentPulse },
	FeatureNarrativeGeneration:  func(c Capabilities) bool { return c.NarrativeGeneration },
	FeatureAPIAccess:            func(c Capabilities) bool { return c.APIAccess },
	FeatureHighVolumeAPI:        func(c Capabilities) bool { return c.HighVolumeAPI },
	FeatureDataExport:           func(c Capabilities) bool { return c.DataExport },
	FeatureCustomReports:        func(c Capabilities) bool { return c.CustomReports },
	FeatureCustomModels:         func(c Capabilities) bool { return c.CustomModels },
}
