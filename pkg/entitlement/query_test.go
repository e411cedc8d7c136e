package entitlement_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantiv/isi-web/pkg/entitlement"
)

func TestCanAccessCountryCount(t *testing.T) {
	t.Parallel()

	t.Run("free plan caps at three", func(t *testing.T) {
		t.Parallel()
		free := entitlement.Resolve("free")
		for _, n := range []int64{0, 1, 2, 3} {
			assert.True(t, entitlement.CanAccessCountryCount(free, n), n)
		}
		assert.False(t, entitlement.CanAccessCountryCount(free, 4))
		assert.False(t, free.CanAccessCountryCount(100))
	})

	t.Run("unlimited plans", func(t *testing.T) {
		t.Parallel()
		for _, planID := range []string{"gold", "diamond", "enterprise"} {
			caps := entitlement.Resolve(planID)
			for n := int64(0); n <= 10_000; n++ {
				if !entitlement.CanAccessCountryCount(caps, n) {
					t.Fatalf("%s: expected %d countries to be allowed", planID, n)
				}
			}
		}
	})

	t.Run("negative counts are rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, entitlement.CanAccessCountryCount(entitlement.Resolve("free"), -1))
		assert.False(t, entitlement.CanAccessCountryCount(entitlement.Resolve("enterprise"), -1))
	})
}

func TestCanAddUser(t *testing.T) {
	t.Parallel()

	t.Run("gold has a single seat", func(t *testing.T) {
		t.Parallel()
		gold := entitlement.Resolve("gold")
		assert.True(t, entitlement.CanAddUser(gold, 0))
		assert.False(t, entitlement.CanAddUser(gold, 1))
		assert.False(t, gold.CanAddUser(2))
	})

	t.Run("diamond has five seats", func(t *testing.T) {
		t.Parallel()
		diamond := entitlement.Resolve("diamond")
		assert.True(t, diamond.CanAddUser(4))
		assert.False(t, diamond.CanAddUser(5))
	})

	t.Run("enterprise is unlimited", func(t *testing.T) {
		t.Parallel()
		enterprise := entitlement.Resolve("enterprise")
		for n := int64(0); n <= 10_000; n++ {
			if !enterprise.CanAddUser(n) {
				t.Fatalf("expected seat %d to be allowed", n)
			}
		}
	})

	t.Run("negative counts are rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, entitlement.Resolve("free").CanAddUser(-1))
		assert.False(t, entitlement.Resolve("enterprise").CanAddUser(-5))
	})
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	free := entitlement.Resolve("free")

	left, unlimited := entitlement.RemainingCountries(free, 1)
	assert.False(t, unlimited)
	assert.Equal(t, int64(2), left)

	left, _ = entitlement.RemainingCountries(free, 7)
	assert.Equal(t, int64(0), left)

	_, unlimited = entitlement.RemainingCountries(entitlement.Resolve("gold"), 50)
	assert.True(t, unlimited)

	left, unlimited = entitlement.RemainingSeats(entitlement.Resolve("diamond"), 2)
	assert.False(t, unlimited)
	assert.Equal(t, int64(3), left)

	_, unlimited = entitlement.RemainingSeats(entitlement.Resolve("enterprise"), 2)
	assert.True(t, unlimited)
}

func TestHasFeature_UnknownFeature(t *testing.T) {
	t.Parallel()

	caps := entitlement.Resolve("enterprise")
	assert.False(t, entitlement.HasFeature(caps, entitlement.Feature("maxCountries")))
	assert.False(t, entitlement.HasFeature(caps, entitlement.Feature("planDisplayName")))
	assert.False(t, entitlement.HasFeature(caps, ""))
}

func TestUpgradeMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plan string
		next string
	}{
		{"free", "Gold"},
		{"gold", "Diamond"},
		{"diamond", "Enterprise"},
		{"enterprise", "Enterprise"},
	}
	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			t.Parallel()
			msg := entitlement.UpgradeMessage(entitlement.Resolve(tt.plan), "Data Export")
			assert.Equal(t, "Upgrade to "+tt.next+" plan to unlock Data Export", msg)
			assert.Contains(t, msg, tt.next)
		})
	}

	assert.Equal(t,
		"Upgrade to Diamond plan to unlock Realtime I S I",
		entitlement.Resolve("gold").FeatureUpgradeMessage(entitlement.FeatureRealtimeISI),
	)
}

func TestFeatureDisplayName(t *testing.T) {
	t.Parallel()

	tests := map[entitlement.Feature]string{
		entitlement.FeatureInteractiveDashboard: "Interactive Dashboard",
		entitlement.FeatureBasicISI:             "Basic I S I",
		entitlement.FeatureRealtimeISI:          "Realtime I S I",
		entitlement.FeatureMETI:                 "M E T I",
		entitlement.FeatureSentimentPulse:       "Sentiment Pulse",
		entitlement.FeatureNarrativeGeneration:  "Narrative Generation",
		entitlement.FeatureAPIAccess:            "A P I Access",
		entitlement.FeatureHighVolumeAPI:        "High Volume A P I",
		entitlement.FeatureDataExport:           "Data Export",
		entitlement.FeatureCustomModels:         "Custom Models",
	}
	for f, want := range tests {
		assert.Equal(t, want, entitlement.FeatureDisplayName(f))
		assert.Equal(t, want, f.DisplayName())
	}

	assert.Equal(t, "Widget", entitlement.FeatureDisplayName("hasWidget"))
	assert.Equal(t, "widget", entitlement.FeatureDisplayName("widget"))
}

func TestParseFeature(t *testing.T) {
	t.Parallel()

	f, err := entitlement.ParseFeature("hasDataExport")
	require.NoError(t, err)
	assert.Equal(t, entitlement.FeatureDataExport, f)

	for _, s := range []string{"", "hasdataexport", "maxCountries", "supportLevel", "DataExport"} {
		_, err := entitlement.ParseFeature(s)
		assert.ErrorIs(t, err, entitlement.ErrUnknownFeature, s)
	}

	for _, f := range entitlement.Features() {
		assert.True(t, f.Valid(), f)
	}
}

func TestEnabledFeatures(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []entitlement.Feature{
		entitlement.FeatureInteractiveDashboard,
		entitlement.FeatureBasicISI,
	}, entitlement.Resolve("free").EnabledFeatures())
	assert.Equal(t, []entitlement.Feature{
		entitlement.FeatureInteractiveDashboard,
		entitlement.FeatureRealtimeISI,
		entitlement.FeatureMETI,
		entitlement.FeatureSentimentPulse,
		entitlement.FeatureNarrativeGeneration,
		entitlement.FeatureAPIAccess,
		entitlement.FeatureHighVolumeAPI,
		entitlement.FeatureDataExport,
		entitlement.FeatureCustomReports,
		entitlement.FeatureCustomModels,
	}, entitlement.Resolve("enterprise").EnabledFeatures())
}

func TestCapabilities_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("limited plan", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(entitlement.Resolve("free"))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, true, got["hasBasicISI"])
		assert.Equal(t, false, got["hasRealtimeISI"])
		assert.Equal(t, float64(3), got["maxCountries"])
		assert.Equal(t, float64(1), got["maxUsers"])
		assert.Equal(t, "community", got["supportLevel"])
		assert.Equal(t, "free", got["planTier"])
		assert.Equal(t, "Free", got["planDisplayName"])
		assert.NotContains(t, got, "MaxCountries")
	})

	t.Run("unlimited plan", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(entitlement.Resolve("enterprise"))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Contains(t, got, "maxCountries")
		assert.Nil(t, got["maxCountries"])
		assert.Nil(t, got["maxUsers"])
		assert.Equal(t, "dedicated-manager", got["supportLevel"])
	})
}
