// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world samples hex tile worlds: tile kinds with material
// colors and heights, seeded level generation, and the water ripple
// height function. It composes hex and hexgeom the way a renderer
// consumes them: one shared mesh template, plus a world position and
// a color per tile instance.
package world

//go:generate core generate

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"

	"cogentcore.org/hexworld/hex"
	"cogentcore.org/hexworld/hexgeom"
)

// Tiles are the kinds of terrain tiles.
type Tiles int32 //enums:enum

const (
	// Water tiles sit at height 0; an animation layer ripples them
	// with [RippleHeight].
	Water Tiles = iota

	// Grass tiles sit at moderate, slightly varied heights.
	Grass

	// Hills tiles sit at high, strongly varied heights.
	Hills
)

// Color returns the material color for the tile kind.
func (t Tiles) Color() color.RGBA {
	switch t {
	case Water:
		return colors.FromRGB(73, 185, 230) // #49B9E6
	case Grass:
		return colors.FromRGB(178, 240, 84) // #B2F054
	}
	return colors.FromRGB(184, 133, 97) // #B88561
}

// Height returns a sampled height for the tile kind: water is always
// at 0, grass at 0.5 +- 0.2, and hills at 2 +- 0.5.
func (t Tiles) Height(rnd randx.Rand) float32 {
	switch t {
	case Grass:
		return 0.5 + 0.4*(rnd.Float32()-0.5)
	case Hills:
		return 2 + (rnd.Float32() - 0.5)
	}
	return 0
}

// Sample returns a random tile kind: 5 in 10 water, 2 in 10 grass,
// and 3 in 10 hills.
func Sample(rnd randx.Rand) Tiles {
	switch n := rnd.Intn(10); {
	case n < 5:
		return Water
	case n < 7:
		return Grass
	}
	return Hills
}

// Tile is one placed tile of a generated level.
type Tile struct {
	// grid coordinate of the tile
	Coord hex.Coord

	// terrain kind
	Kind Tiles

	// sampled tile height
	Height float32

	// world position for the tile instance, from [hexgeom.Center]
	// at the tile height
	Pos math32.Vector3

	// material color
	Color color.RGBA
}

// Generate returns a sample level for the given seed: one tile per
// coordinate with q and r in [-n, n), each with kind, height, color,
// and world position. The result is deterministic for a given seed,
// and tiles of one level share a single unit-radius mesh template.
func Generate(n int, seed int64) []Tile {
	rnd := randx.NewSysRand(seed)
	tiles := make([]Tile, 0, 4*n*n)
	for q := -n; q < n; q++ {
		for r := -n; r < n; r++ {
			c := hex.New(q, r)
			kind := Sample(rnd)
			h := kind.Height(rnd)
			tiles = append(tiles, Tile{
				Coord:  c,
				Kind:   kind,
				Height: h,
				Pos:    hexgeom.Center(1, c, math32.Vec3(0, h, 0)),
				Color:  kind.Color(),
			})
		}
	}
	return tiles
}
