// Package entitlement maps subscription plans to the capabilities they grant.
//
// Every plan tier (free, gold, diamond, enterprise) has exactly one
// Capabilities record in a fixed catalog. Resolve turns a plan identifier
// from the session into that record; matching is case-insensitive and
// anything it does not recognise resolves to the free plan, so resolution
// never fails.
//
// # Usage
//
//	caps := entitlement.Resolve(user.Plan)
//	if caps.HasFeature(entitlement.FeatureRealtimeISI) {
//		// render live index
//	}
//	if !caps.CanAddUser(seatsInUse) {
//		msg := caps.UpgradeMessage("more seats")
//	}
//
// Features are a closed set of boolean flags. Country and seat ceilings are
// int64 values where Unlimited (-1) means no ceiling; use
// CanAccessCountryCount and CanAddUser instead of comparing them directly.
//
// Records are plain values. Callers get copies and cannot alter the catalog.
//
// # Context
//
// HTTP middleware stores the caller's plan identifier with WithPlanID.
// ResolveContext reads it back, and LoggerExtractor adds the plan tier to
// log records.
package entitlement
