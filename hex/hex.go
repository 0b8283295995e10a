// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hex provides axial/cube coordinates on an infinite hexagonal
// grid, with direction-based neighbor navigation.
package hex

//go:generate core generate

// Coord is a coordinate on a hex grid, representing distances along the
// various directions of travel. To represent a valid hex coordinate,
// Q + R + S must equal 0; this is enforced by construction, with S always
// derived as -Q-R and never set independently. Coord is an immutable
// value type: every operation returns a new value, and coordinates are
// comparable and usable as map keys.
type Coord struct {
	Q, R, S int
}

// New returns the coordinate with the given q and r values,
// deriving s to enforce the zero-sum invariant.
func New(q, r int) Coord {
	return Coord{Q: q, R: r, S: -q - r}
}

// Origin returns the origin of the infinite hex grid.
func Origin() Coord {
	return Coord{}
}

// North returns the coordinate to the north.
func (c Coord) North() Coord {
	return New(c.Q, c.R-1)
}

// South returns the coordinate to the south.
func (c Coord) South() Coord {
	return New(c.Q, c.R+1)
}

// Northeast returns the coordinate to the northeast.
func (c Coord) Northeast() Coord {
	return New(c.Q+1, c.R-1)
}

// Southwest returns the coordinate to the southwest.
func (c Coord) Southwest() Coord {
	return New(c.Q-1, c.R+1)
}

// Northwest returns the coordinate to the northwest.
func (c Coord) Northwest() Coord {
	return New(c.Q-1, c.R)
}

// Southeast returns the coordinate to the southeast.
func (c Coord) Southeast() Coord {
	return New(c.Q+1, c.R)
}

// Neighbor returns the coordinate in the given direction.
// [None] returns the coordinate unchanged.
func (c Coord) Neighbor(d Direction) Coord {
	switch d {
	case North:
		return c.North()
	case South:
		return c.South()
	case Northeast:
		return c.Northeast()
	case Southwest:
		return c.Southwest()
	case Northwest:
		return c.Northwest()
	case Southeast:
		return c.Southeast()
	}
	return c
}

// Neighbors returns the six neighboring coordinates, starting from north
// and going clockwise, per [Directions]. The slice is freshly allocated
// on every call, so repeated calls reproduce the identical sequence.
func (c Coord) Neighbors() []Coord {
	ns := make([]Coord, len(Directions))
	for i, d := range Directions {
		ns[i] = c.Neighbor(d)
	}
	return ns
}
