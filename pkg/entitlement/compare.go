package entitlement

// Limit names a countable resource on a plan.
type Limit string

const (
	LimitCountries Limit = "maxCountries"
	LimitUsers     Limit = "maxUsers"
)

// LimitChange represents a change in a resource ceiling.
type LimitChange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Comparison contains the differences between two capability records.
// Used by the upgrade page to show what the next plan unlocks.
type Comparison struct {
	From             Tier                  `json:"from"`
	To               Tier                  `json:"to"`
	NewFeatures      []Feature             `json:"newFeatures"`
	LostFeatures     []Feature             `json:"lostFeatures"`
	IncreasedLimits  map[Limit]LimitChange `json:"increasedLimits"`
	DecreasedLimits  map[Limit]LimitChange `json:"decreasedLimits"`
	SupportChanged   bool                  `json:"supportChanged"`
	SupportLevelFrom SupportLevel          `json:"supportLevelFrom"`
	SupportLevelTo   SupportLevel          `json:"supportLevelTo"`
}

// HasLosses reports whether moving to the target drops any feature or lowers any limit.
func (c *Comparison) HasLosses() bool {
	return len(c.LostFeatures) > 0 || len(c.DecreasedLimits) > 0
}

// Compare returns the differences between the current and target records.
func Compare(current, target Capabilities) *Comparison {
	cmp := &Comparison{
		From:             current.PlanTier,
		To:               target.PlanTier,
		NewFeatures:      make([]Feature, 0),
		LostFeatures:     make([]Feature, 0),
		IncreasedLimits:  make(map[Limit]LimitChange),
		DecreasedLimits:  make(map[Limit]LimitChange),
		SupportChanged:   current.SupportLevel != target.SupportLevel,
		SupportLevelFrom: current.SupportLevel,
		SupportLevelTo:   target.SupportLevel,
	}

	for _, f := range features {
		had, has := HasFeature(current, f), HasFeature(target, f)
		switch {
		case has && !had:
			cmp.NewFeatures = append(cmp.NewFeatures, f)
		case had && !has:
			cmp.LostFeatures = append(cmp.LostFeatures, f)
		}
	}

	cmp.compareLimit(LimitCountries, current.MaxCountries, target.MaxCountries)
	cmp.compareLimit(LimitUsers, current.MaxUsers, target.MaxUsers)

	return cmp
}

func (c *Comparison) compareLimit(l Limit, from, to int64) {
	if from == to {
		return
	}
	change := LimitChange{From: from, To: to}

	// Unlimited-to-limited is a decrease so it is never hidden from the user.
	switch {
	case from == Unlimited:
		c.DecreasedLimits[l] = change
	case to == Unlimited, to > from:
		c.IncreasedLimits[l] = change
	default:
		c.DecreasedLimits[l] = change
	}
}
