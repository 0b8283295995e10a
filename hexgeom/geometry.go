// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hexgeom generates renderable triangle-mesh geometry for
// hexagonal tiles on a flat-top hex grid: projection of [hex.Coord]
// grid coordinates into Cartesian points, and assembly of position,
// normal, and index buffers for flat hexagon faces and beveled
// hexagonal prisms with seam-hiding skirts.
//
// Every function is a pure, total mapping from inputs to outputs:
// there is no shared state, no error reporting, and degenerate numeric
// inputs (radius <= 0, bevel factor outside (0,1]) produce degenerate
// but deterministic geometry. All functions are safe to call from
// multiple goroutines.
package hexgeom

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/hexworld/hex"
)

// InnerRadiusRatio is the ratio between a circle touching the points of
// a hex grid (the outer radius) and a circle touching the edges of a
// hex grid (the inner radius). Calculated as sqrt(3) / 2.
const InnerRadiusRatio = 0.8660254

// Center returns the point at the center of the hexagon at c, on a grid
// with hexagons of size radius, shifted by offset. The radius and offset
// parameters are used to compose larger effects such as beveling.
func Center(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	qf, rf := float32(c.Q), float32(c.R)
	outer, inner := radius, radius*InnerRadiusRatio

	// Start from q and shift over by half a unit for each row, which
	// produces a rhombus; integer division by 2 cancels that out on
	// every other row to get roughly a grid. The division truncates
	// toward zero, so negative rows land slightly differently than a
	// flooring version would: see TestCenterNegativeRows, which pins
	// the accepted behavior.
	x := (qf + 0.5*rf - float32(c.R/2)) * inner * 2

	// Each row moves 1.5 times the outer radius along the z axis.
	z := rf * outer * 1.5

	return math32.Vec3(x, 0, z).Add(offset)
}

// EastCorner returns the eastern corner point of the hexagon at c:
// the center moved along z by the full radius.
func EastCorner(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	return Center(radius, c, offset).Add(math32.Vec3(0, 0, radius))
}

// WestCorner returns the western corner point of the hexagon at c:
// the center moved along -z by the full radius.
func WestCorner(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	return Center(radius, c, offset).Add(math32.Vec3(0, 0, -radius))
}

// NorthEastCorner returns the north-eastern corner point of the hexagon
// at c: along x (north) to the inner radius, to align with the top edge,
// and along z (east) by half the radius, not as far as the east corner.
func NorthEastCorner(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	inner := radius * InnerRadiusRatio
	return Center(radius, c, offset).Add(math32.Vec3(inner, 0, 0.5*radius))
}

// NorthWestCorner returns the north-western corner point of the hexagon
// at c: along x (north) to the inner radius and along -z (west) by half
// the radius.
func NorthWestCorner(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	inner := radius * InnerRadiusRatio
	return Center(radius, c, offset).Add(math32.Vec3(inner, 0, -0.5*radius))
}

// SouthEastCorner returns the south-eastern corner point of the hexagon
// at c: along -x (south) to the inner radius and along z (east) by half
// the radius.
func SouthEastCorner(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	inner := radius * InnerRadiusRatio
	return Center(radius, c, offset).Add(math32.Vec3(-inner, 0, 0.5*radius))
}

// SouthWestCorner returns the south-western corner point of the hexagon
// at c: along -x (south) to the inner radius and along -z (west) by half
// the radius.
func SouthWestCorner(radius float32, c hex.Coord, offset math32.Vector3) math32.Vector3 {
	inner := radius * InnerRadiusRatio
	return Center(radius, c, offset).Add(math32.Vec3(-inner, 0, -0.5*radius))
}

// Ring appends the points around the edge of a flat hexagon of the
// given radius at c to pts, returning the extended slice: the six
// corners counter-clockwise starting from the east corner, with the
// east corner appended an extra time at the end so that consumers
// building fans or quad bands never need modular wraparound. 7 points.
func Ring(pts []math32.Vector3, radius float32, c hex.Coord, offset math32.Vector3) []math32.Vector3 {
	return append(pts,
		EastCorner(radius, c, offset),
		NorthEastCorner(radius, c, offset),
		NorthWestCorner(radius, c, offset),
		WestCorner(radius, c, offset),
		SouthWestCorner(radius, c, offset),
		SouthEastCorner(radius, c, offset),
		EastCorner(radius, c, offset),
	)
}
