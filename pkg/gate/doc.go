// Package gate renders plan-gated UI as templ components.
//
// Three variants share one decision, whether the caller's plan grants a
// feature, and differ only in what they show when it does not:
//
//   - Feature hides the content and shows a fallback or a locked panel.
//   - LockBadge shows a small "Locked" badge next to navigation entries.
//   - Overlay keeps the content visible but inert under an upgrade message.
//
// Gates hold no state. The plan identifier is passed in on construction and
// resolved on every render, so re-rendering after a plan change is enough to
// update them.
//
//	@gate.Feature(planID, entitlement.FeatureRealtimeISI, views.LiveIndex())
//	@gate.LockBadge(planID, entitlement.FeatureMETI)
//	@gate.Overlay(planID, entitlement.FeatureDataExport, views.ExportButton(),
//		gate.WithTooltip("Exports are part of Diamond"))
package gate
