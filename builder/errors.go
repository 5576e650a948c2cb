// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w, never by redefining sentinels.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rungs) is smaller than
// the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not be applied,
// e.g. a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
