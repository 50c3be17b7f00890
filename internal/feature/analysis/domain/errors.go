// Package domain defines domain-level errors for the analysis feature.
package domain

import "errors"

// ErrInsufficientHistory indicates that a series is too short for the
// requested computation. It is surfaced to the caller as a user-visible
// "not enough data" condition and is never retried.
var ErrInsufficientHistory = errors.New("not enough historical data")
