package entitlement

import "encoding/json"

// Unlimited marks a limit with no ceiling (-1 chosen for SQL compatibility).
const Unlimited int64 = -1

// SupportLevel is the support tier bundled with a plan.
type SupportLevel string

const (
	SupportCommunity        SupportLevel = "community"
	SupportPriority         SupportLevel = "priority"
	SupportDedicated        SupportLevel = "dedicated"
	SupportDedicatedManager SupportLevel = "dedicated-manager"
)

// Capabilities is the full entitlement record for one plan tier.
// It is a value type: the catalog hands out copies, so nothing a caller does
// to a returned record reaches the catalog.
type Capabilities struct {
	// Feature flags
	InteractiveDashboard bool `json:"hasInteractiveDashboard"`
	BasicISI             bool `json:"hasBasicISI"`
	DailyISI             bool `json:"hasDailyISI"`
	RealtimeISI          bool `json:"hasRealtimeISI"`
	METI                 bool `json:"hasMETI"`
	SentimentPulse       bool `json:"hasSentimentPulse"`
	NarrativeGeneration  bool `json:"hasNarrativeGeneration"`

	// Access flags
	APIAccess     bool `json:"hasAPIAccess"`
	HighVolumeAPI bool `json:"hasHighVolumeAPI"`
	DataExport    bool `json:"hasDataExport"`
	CustomReports bool `json:"hasCustomReports"`
	CustomModels  bool `json:"hasCustomModels"`

	MaxCountries int64 `json:"-"` // Unlimited or a positive count
	MaxUsers     int64 `json:"-"` // Unlimited or a positive count

	SupportLevel    SupportLevel `json:"supportLevel"`
	PlanTier        Tier         `json:"planTier"`
	PlanDisplayName string       `json:"planDisplayName"`
}

// UnlimitedCountries reports whether the plan has no country ceiling.
func (c Capabilities) UnlimitedCountries() bool { return c.MaxCountries == Unlimited }

// UnlimitedUsers reports whether the plan has no seat ceiling.
func (c Capabilities) UnlimitedUsers() bool { return c.MaxUsers == Unlimited }

// MarshalJSON encodes unlimited limits as null.
func (c Capabilities) MarshalJSON() ([]byte, error) {
	type plain Capabilities
	return json.Marshal(struct {
		plain
		MaxCountries *int64 `json:"maxCountries"`
		MaxUsers     *int64 `json:"maxUsers"`
	}{
		plain:        plain(c),
		MaxCountries: limitPtr(c.MaxCountries),
		MaxUsers:     limitPtr(c.MaxUsers),
	})
}

func limitPtr(v int64) *int64 {
	if v == Unlimited {
		return nil
	}
	return &v
}
