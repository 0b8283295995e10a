// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hexgeom

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/hexworld/hex"
)

// FlatHexagonPoints appends the points of a flat hexagon of the given
// radius at c to pts, returning the extended slice: the center point
// followed by [Ring] at zero offset. 8 points.
func FlatHexagonPoints(pts []math32.Vector3, radius float32, c hex.Coord) []math32.Vector3 {
	pts = append(pts, Center(radius, c, math32.Vector3{}))
	return Ring(pts, radius, c, math32.Vector3{})
}

// FlatHexagonNormals appends the normals for a flat hexagon to norms,
// returning the extended slice: each of the 8 points faces straight up.
func FlatHexagonNormals(norms []math32.Vector3) []math32.Vector3 {
	for range 8 {
		norms = append(norms, math32.Vec3(0, 1, 0))
	}
	return norms
}

// FlatHexagonIndexes appends the indices for a flat hexagon top to idx,
// returning the extended slice: a triangle fan from the center (index 0)
// across consecutive ring points, 7 triangles, 21 indices.
//
// The final triangle references point index 8, one past the end of a
// standalone 8-point flat hexagon buffer: the fan assumes a backing
// buffer of at least 9 points. That holds in its one use, as the top
// band of [BevelHexagonIndexes], where triangle 7 bridges onto the
// slope ring; do not clamp the range.
func FlatHexagonIndexes(idx []uint32) []uint32 {
	for i := uint32(0); i <= 6; i++ {
		idx = append(idx, 0, i+1, i+2)
	}
	return idx
}

// BevelHexagonPoints appends the points for a beveled hexagon of the
// given radius at c, beveled by factor, to pts, returning the extended
// slice. 22 points: an 8-point top face scaled to radius*factor, a
// 7-point full-radius ring lowered so the bevel slopes at 45 degrees,
// and a 7-point skirt ring far below the tile.
func BevelHexagonPoints(pts []math32.Vector3, radius, factor float32, c hex.Coord) []math32.Vector3 {
	inner := radius * factor

	// The top face is a slightly scaled flat hexagon.
	pts = FlatHexagonPoints(pts, inner, c)

	// A full sized ring slightly below the face, lowered by the same
	// distance the top was scaled in, makes the slopes 45 degrees.
	pts = Ring(pts, radius, c, math32.Vec3(0, inner-radius, 0))

	// A ring much lower forms a skirt, so that hexagons at different
	// heights don't show gaps between them.
	return Ring(pts, radius, c, math32.Vec3(0, -10, 0))
}

// BevelHexagonNormals appends the 22 normals matching
// [BevelHexagonPoints] to norms, returning the extended slice.
func BevelHexagonNormals(norms []math32.Vector3) []math32.Vector3 {
	norms = FlatHexagonNormals(norms)
	c := hex.Origin()
	// A small hexagon ring with its points lifted up yields vectors
	// orthogonal to the 45 degree slope faces.
	norms = Ring(norms, 0.707, c, math32.Vec3(0, 0.707, 0))
	// A unit hexagon ring yields outward-pointing vectors for the skirt.
	return Ring(norms, 1, c, math32.Vector3{})
}

// QuadIndexes appends the two triangles covering the quad with the four
// given corners to idx, returning the extended slice. The fixed winding,
// (topLeft, bottomLeft, bottomRight) then (topLeft, bottomRight,
// topRight), keeps every face normal pointing consistently outward.
func QuadIndexes(idx []uint32, topLeft, topRight, bottomLeft, bottomRight uint32) []uint32 {
	idx = append(idx, topLeft, bottomLeft, bottomRight)
	return append(idx, topLeft, bottomRight, topRight)
}

// BevelHexagonIndexes appends the indices for a beveled hexagon to idx,
// returning the extended slice. 35 triangles in three bands: the flat
// top fan, a quad band joining the top face to the sloped ring, and a
// quad band joining the slope to the skirt.
//
// Like the fan (see [FlatHexagonIndexes]), the final skirt quad
// references point index 22, one past a standalone 22-point beveled
// hexagon buffer; the backing buffer must have at least 23 points.
func BevelHexagonIndexes(idx []uint32) []uint32 {
	idx = FlatHexagonIndexes(idx)

	// Quads between the inner beveled hex and the outer sloped ring.
	for i := uint32(0); i <= 6; i++ {
		idx = QuadIndexes(idx, i+1, i+2, i+8, i+9)
	}
	// Quads between the sloped ring and the skirt ring.
	for i := uint32(0); i <= 6; i++ {
		idx = QuadIndexes(idx, i+8, i+9, i+15, i+16)
	}
	return idx
}
