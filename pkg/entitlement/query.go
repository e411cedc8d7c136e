package entitlement

import "fmt"

// HasFeature reports whether the record grants f.
// Unknown features are denied.
func HasFeature(c Capabilities, f Feature) bool {
	get, ok := flagAccessors[f]
	if !ok {
		return false
	}
	return get(c)
}

// CanAccessCountryCount reports whether the plan covers requested countries.
// Negative counts are rejected.
func CanAccessCountryCount(c Capabilities, requested int64) bool {
	if requested < 0 {
		return false
	}
	if c.MaxCountries == Unlimited {
		return true
	}
	return requested <= c.MaxCountries
}

// CanAddUser reports whether one more seat fits given current seats in use.
// Check before inserting: the limit caps the total, so current must stay
// strictly below it. Negative counts are rejected.
func CanAddUser(c Capabilities, current int64) bool {
	if current < 0 {
		return false
	}
	if c.MaxUsers == Unlimited {
		return true
	}
	return current < c.MaxUsers
}

// RemainingCountries returns how many more countries fit under the plan.
// The second value is true when the plan has no ceiling.
func RemainingCountries(c Capabilities, used int64) (int64, bool) {
	if c.MaxCountries == Unlimited {
		return 0, true
	}
	return max(c.MaxCountries-max(used, 0), 0), false
}

// RemainingSeats returns how many more users fit under the plan.
// The second value is true when the plan has no ceiling.
func RemainingSeats(c Capabilities, used int64) (int64, bool) {
	if c.MaxUsers == Unlimited {
		return 0, true
	}
	return max(c.MaxUsers-max(used, 0), 0), false
}

// UpgradeMessage tells the user which plan unlocks a feature.
// Enterprise points at itself.
func UpgradeMessage(c Capabilities, featureDisplayName string) string {
	next := Catalog(c.PlanTier.Next())
	return fmt.Sprintf("Upgrade to %s plan to unlock %s", next.PlanDisplayName, featureDisplayName)
}

// HasFeature is the method form of the package-level HasFeature.
func (c Capabilities) HasFeature(f Feature) bool { return HasFeature(c, f) }

// CanAccessCountryCount is the method form of the package-level CanAccessCountryCount.
func (c Capabilities) CanAccessCountryCount(requested int64) bool {
	return CanAccessCountryCount(c, requested)
}

// CanAddUser is the method form of the package-level CanAddUser.
func (c Capabilities) CanAddUser(current int64) bool { return CanAddUser(c, current) }

// UpgradeMessage is the method form of the package-level UpgradeMessage.
func (c Capabilities) UpgradeMessage(featureDisplayName string) string {
	return UpgradeMessage(c, featureDisplayName)
}

// FeatureUpgradeMessage builds the upgrade message for f using its derived label.
func (c Capabilities) FeatureUpgradeMessage(f Feature) string {
	return UpgradeMessage(c, FeatureDisplayName(f))
}

// EnabledFeatures lists the features the record grants, in Features order.
func (c Capabilities) EnabledFeatures() []Feature {
	out := make([]Feature, 0, len(features))
	for _, f := range features {
		if HasFeature(c, f) {
			out = append(out, f)
		}
	}
	return out
}
