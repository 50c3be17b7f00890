// Package domain defines domain-level errors for the prediction feature.
package domain

import "errors"

// ErrModelNotTrained indicates that no trained regressor artifact exists for
// the requested symbol. This is a normal "not yet available" condition, not
// a failure, and callers must surface it distinctly rather than defaulting.
var ErrModelNotTrained = errors.New("model not trained for symbol")
