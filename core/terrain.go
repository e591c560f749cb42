// SPDX-License-Identifier: MIT
//
// File: terrain.go
// Role: TerrainType value type.
// Notes:
//   - Terrain is metadata only; the store never derives weights from it.

package core

import "strconv"

// TerrainType tags a point with either the default terrain or a
// caller-defined integer-coded terrain. The zero value is the default terrain.
// TerrainType is comparable and safe to use as a map key.
type TerrainType struct {
	code   int32
	custom bool
}

// DefaultTerrain returns the default terrain tag.
func DefaultTerrain() TerrainType { return TerrainType{} }

// Terrain returns the caller-defined terrain with the given code.
// Terrain(0) is distinct from DefaultTerrain().
func Terrain(code int32) TerrainType { return TerrainType{code: code, custom: true} }

// IsDefault reports whether t is the default terrain.
func (t TerrainType) IsDefault() bool { return !t.custom }

// Code returns the terrain code and true, or (0, false) for the default terrain.
func (t TerrainType) Code() (int32, bool) {
	if !t.custom {
		return 0, false
	}

	return t.code, true
}

// String renders "default" or "terrain(<code>)".
func (t TerrainType) String() string {
	if !t.custom {
		return "default"
	}

	return "terrain(" + strconv.FormatInt(int64(t.code), 10) + ")"
}
