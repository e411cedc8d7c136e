package entitlement

import "strings"

// Tier is a subscription level.
type Tier string

const (
	TierFree       Tier = "free"
	TierGold       Tier = "gold"
	TierDiamond    Tier = "diamond"
	TierEnterprise Tier = "enterprise"
)

// tiers is ordered from lowest to highest.
var tiers = []Tier{TierFree, TierGold, TierDiamond, TierEnterprise}

// Tiers returns all known tiers from lowest to highest.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// ParseTier normalizes a plan identifier. Matching is case-insensitive and
// ignores surrounding whitespace. Anything unrecognised, including the empty
// string, is treated as TierFree.
func ParseTier(planID string) Tier {
	switch t := Tier(strings.ToLower(strings.TrimSpace(planID))); t {
	case TierFree, TierGold, TierDiamond, TierEnterprise:
		return t
	default:
		return TierFree
	}
}

// Next returns the tier a user on t should upgrade to.
// Enterprise maps to itself.
func (t Tier) Next() Tier {
	switch ParseTier(string(t)) {
	case TierFree:
		return TierGold
	case TierGold:
		return TierDiamond
	default:
		return TierEnterprise
	}
}

// DisplayName returns the human-readable plan label.
func (t Tier) DisplayName() string {
	return Catalog(t).PlanDisplayName
}

func (t Tier) String() string {
	return string(t)
}
