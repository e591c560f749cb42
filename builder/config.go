// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// config.go — resolved configuration and functional options.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/influencemap/core"
)

// builderConfig holds the resolved options for one BuildGraph/AddToGraph call.
type builderConfig struct {
	idOffset core.PointID
	terrain  core.TerrainType

	orthogonal core.Weight
	diagonal   core.Weight
	// diagonals are only emitted when WithDiagonalWeight was given.
	withDiagonals bool
}

// Option customizes a build before any constructor runs.
type Option func(*builderConfig)

// newBuilderConfig applies opts over the defaults: offset 0, default terrain,
// orthogonal weight core.DefaultWeight, no diagonals.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idOffset:   0,
		terrain:    core.DefaultTerrain(),
		orthogonal: core.DefaultWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDOffset sets the id of the first point created.
func WithIDOffset(first core.PointID) Option {
	return func(c *builderConfig) { c.idOffset = first }
}

// WithTerrain sets the terrain given to every created point.
func WithTerrain(t core.TerrainType) Option {
	return func(c *builderConfig) { c.terrain = t }
}

// WithOrthogonalWeight sets the weight of horizontal/vertical connections
// (and of every hex connection). Panics on negative or NaN weights.
func WithOrthogonalWeight(w core.Weight) Option {
	mustWeight("WithOrthogonalWeight", w)
	return func(c *builderConfig) { c.orthogonal = w }
}

// WithDiagonalWeight enables diagonal connections in SquareGrid with the given
// weight. HexGrid ignores it. Panics on negative or NaN weights.
func WithDiagonalWeight(w core.Weight) Option {
	mustWeight("WithDiagonalWeight", w)
	return func(c *builderConfig) {
		c.diagonal = w
		c.withDiagonals = true
	}
}

func mustWeight(name string, w core.Weight) {
	if math.IsNaN(float64(w)) || w < 0 {
		panic(fmt.Sprintf("builder: %s(%v): weight must be a non-negative number", name, float64(w)))
	}
}
