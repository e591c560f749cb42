// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w via builderErrorf.
//   • Errors from core (ErrDuplicateID, ErrUnknownPoint) are wrapped, not replaced.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyBounds indicates a grid bound that contains no whole cell.
var ErrEmptyBounds = errors.New("builder: bounds contain no cell")

// ErrBoundsTooLarge indicates a grid bound that is infinite or holds more
// than MaxGridCells cells.
var ErrBoundsTooLarge = errors.New("builder: bounds too large")

// MaxGridCells caps the number of cells a single grid constructor may create.
const MaxGridCells = 1 << 24

// ErrConstructFailed indicates a programmer error in the constructor list
// (e.g. a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and the failing step,
// keeping err reachable through errors.Is. The result reads "<Method>: <step>: <err>".
func builderErrorf(method, step string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, step, err)
}
