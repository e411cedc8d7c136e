package entitlement

import "errors"

// ErrUnknownFeature is returned by ParseFeature for anything outside the feature set.
var ErrUnknownFeature = errors.New("entitlement: unknown feature")
