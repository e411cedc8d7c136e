// Package dashboard serves the plan-gated dashboard shell.
//
// Every gated area on the page goes through pkg/gate, so what a visitor sees
// follows from the plan identifier PlanSession puts in the request context.
// Outside production, POST /plan lets a visitor preview another plan; with
// datastar the header, sidebar and feature grid are patched in place.
package dashboard
