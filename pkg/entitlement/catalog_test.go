package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantiv/isi-web/pkg/entitlement"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	expected := map[entitlement.Tier]entitlement.Capabilities{
		entitlement.TierFree: {
			InteractiveDashboard: true,
			BasicISI:             true,
			MaxCountries:         3,
			MaxUsers:             1,
			SupportLevel:         entitlement.SupportCommunity,
			PlanTier:             entitlement.TierFree,
			PlanDisplayName:      "Free",
		},
		entitlement.TierGold: {
			InteractiveDashboard: true,
			DailyISI:             true,
			METI:                 true,
			SentimentPulse:       true,
			NarrativeGeneration:  true,
			MaxCountries:         entitlement.Unlimited,
			MaxUsers:             1,
			SupportLevel:         entitlement.SupportPriority,
			PlanTier:             entitlement.TierGold,
			PlanDisplayName:      "Gold",
		},
		entitlement.TierDiamond: {
			InteractiveDashboard: true,
			RealtimeISI:          true,
			METI:                 true,
			SentimentPulse:       true,
			NarrativeGeneration:  true,
			APIAccess:            true,
			DataExport:           true,
			CustomReports:        true,
			MaxCountries:         entitlement.Unlimited,
			MaxUsers:             5,
			SupportLevel:         entitlement.SupportDedicated,
			PlanTier:             entitlement.TierDiamond,
			PlanDisplayName:      "Diamond",
		},
		entitlement.TierEnterprise: {
			InteractiveDashboard: true,
			RealtimeISI:          true,
			METI:                 true,
			SentimentPulse:       true,
			NarrativeGeneration:  true,
			APIAccess:            true,
			HighVolumeAPI:        true,
			DataExport:           true,
			CustomReports:        true,
			CustomModels:         true,
			MaxCountries:         entitlement.Unlimited,
			MaxUsers:             entitlement.Unlimited,
			SupportLevel:         entitlement.SupportDedicatedManager,
			PlanTier:             entitlement.TierEnterprise,
			PlanDisplayName:      "Enterprise",
		},
	}

	for tier, want := range expected {
		t.Run(string(tier), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, entitlement.Catalog(tier))
			assert.Equal(t, want, entitlement.Resolve(string(tier)))
		})
	}
}

func TestCatalog_FlagMatrix(t *testing.T) {
	t.Parallel()

	// Rows follow the published plan comparison table: free, gold, diamond, enterprise.
	matrix := map[entitlement.Feature][4]bool{
		entitlement.FeatureInteractiveDashboard: {true, true, true, true},
		entitlement.FeatureBasicISI:             {true, false, false, false},
		entitlement.FeatureDailyISI:             {false, true, false, false},
		entitlement.FeatureRealtimeISI:          {false, false, true, true},
		entitlement.FeatureMETI:                 {false, true, true, true},
		entitlement.FeatureSentimentPulse:       {false, true, true, true},
		entitlement.FeatureNarrativeGeneration:  {false, true, true, true},
		entitlement.FeatureAPIAccess:            {false, false, true, true},
		entitlement.FeatureHighVolumeAPI:        {false, false, false, true},
		entitlement.FeatureDataExport:           {false, false, true, true},
		entitlement.FeatureCustomReports:        {false, false, true, true},
		entitlement.FeatureCustomModels:         {false, false, false, true},
	}
	assert.Len(t, matrix, len(entitlement.Features()))

	for i, tier := range entitlement.Tiers() {
		caps := entitlement.Resolve(string(tier))
		for feature, row := range matrix {
			assert.Equal(t, row[i], caps.HasFeature(feature), "%s / %s", tier, feature)
		}
	}
}

func TestCatalog_Enterprise(t *testing.T) {
	t.Parallel()

	caps := entitlement.Resolve("enterprise")
	for _, f := range entitlement.Features() {
		switch f {
		case entitlement.FeatureBasicISI, entitlement.FeatureDailyISI:
			// Replaced by realtime ISI from diamond up.
			assert.False(t, caps.HasFeature(f), f)
		default:
			assert.True(t, caps.HasFeature(f), f)
		}
	}
	assert.True(t, caps.UnlimitedCountries())
	assert.True(t, caps.UnlimitedUsers())
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	t.Parallel()

	caps := entitlement.Resolve("free")
	caps.RealtimeISI = true
	caps.MaxCountries = 100

	fresh := entitlement.Resolve("free")
	assert.False(t, fresh.RealtimeISI)
	assert.Equal(t, int64(3), fresh.MaxCountries)
}

func TestTiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []entitlement.Tier{
		entitlement.TierFree,
		entitlement.TierGold,
		entitlement.TierDiamond,
		entitlement.TierEnterprise,
	}, entitlement.Tiers())

	tiers := entitlement.Tiers()
	tiers[0] = "platinum"
	assert.Equal(t, entitlement.TierFree, entitlement.Tiers()[0])
}
