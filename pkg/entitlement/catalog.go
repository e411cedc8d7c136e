package entitlement

// catalog is fixed at init and only ever copied out.
var catalog = map[Tier]Capabilities{
	TierFree: {
		InteractiveDashboard: true,
		BasicISI:             true,
		MaxCountries:         3,
		MaxUsers:             1,
		SupportLevel:         SupportCommunity,
		PlanTier:             TierFree,
		PlanDisplayName:      "Free",
	},
	TierGold: {
		InteractiveDashboard: true,
		DailyISI:             true,
		METI:                 true,
		SentimentPulse:       true,
		NarrativeGeneration:  true,
		MaxCountries:         Unlimited,
		MaxUsers:             1,
		SupportLevel:         SupportPriority,
		PlanTier:             TierGold,
		PlanDisplayName:      "Gold",
	},
	TierDiamond: {
		InteractiveDashboard: true,
		RealtimeISI:          true,
		METI:                 true,
		SentimentPulse:       true,
		NarrativeGeneration:  true,
		APIAccess:            true,
		DataExport:           true,
		CustomReports:        true,
		MaxCountries:         Unlimited,
		MaxUsers:             5,
		SupportLevel:         SupportDedicated,
		PlanTier:             TierDiamond,
		PlanDisplayName:      "Diamond",
	},
	TierEnterprise: {
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
		MaxCountries:         Unlimited,
		MaxUsers:             Unlimited,
		SupportLevel:         SupportDedicatedManager,
		PlanTier:             TierEnterprise,
		PlanDisplayName:      "Enterprise",
	},
}

// Catalog returns the capability record for a tier.
// Unknown tiers get the free record.
func Catalog(t Tier) Capabilities {
	return catalog[ParseTier(string(t))]
}
