// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hexgeom

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/hexworld/hex"
)

func TestFlatHexagonPoints(t *testing.T) {
	pts := FlatHexagonPoints(nil, 1, hex.Origin())
	assert.Equal(t, 8, len(pts))
	assert.Equal(t, math32.Vector3{}, pts[0])
	assert.Equal(t, Ring(nil, 1, hex.Origin(), math32.Vector3{}), pts[1:])
}

func TestFlatHexagonNormals(t *testing.T) {
	norms := FlatHexagonNormals(nil)
	assert.Equal(t, 8, len(norms))
	for _, n := range norms {
		assert.Equal(t, math32.Vec3(0, 1, 0), n)
	}
}

func TestFlatHexagonIndexes(t *testing.T) {
	idx := FlatHexagonIndexes(nil)
	assert.Equal(t, []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 5,
		0, 5, 6,
		0, 6, 7,
		0, 7, 8, // bridges past a standalone 8-point buffer: see doc comment
	}, idx)
}

func TestQuadIndexes(t *testing.T) {
	assert.Equal(t, []uint32{0, 2, 3, 0, 3, 1}, QuadIndexes(nil, 0, 1, 2, 3))
	assert.Equal(t, []uint32{7, 5, 4, 7, 4, 9}, QuadIndexes(nil, 7, 9, 5, 4))
}

func TestBevelHexagonBuffers(t *testing.T) {
	pts := BevelHexagonPoints(nil, 1, 0.9, hex.Origin())
	norms := BevelHexagonNormals(nil)
	idx := BevelHexagonIndexes(nil)

	assert.Equal(t, 22, len(pts))
	assert.Equal(t, 22, len(norms))
	assert.Equal(t, 105, len(idx))

	// indices reach at most one past the 22 points: the final skirt
	// quad bridges onto index 22, mirroring the fan's bridge onto 8
	var maxIx uint32
	for _, ix := range idx {
		assert.LessOrEqual(t, ix, uint32(22))
		maxIx = max(maxIx, ix)
	}
	assert.Equal(t, uint32(22), maxIx)

	// the bridge index comes from the last skirt quad and nowhere else
	assert.Equal(t, []uint32{14, 21, 22, 14, 22, 15}, idx[99:105])
	assert.NotContains(t, idx[:99], uint32(22))
}

// TestBevelHexagonHeights is the end-to-end band check: with radius 1
// and bevel factor 0.9, the top face sits at y = 0, the slope ring at
// y = 0.9 - 1 = -0.1, and the skirt ring at y = -10.
func TestBevelHexagonHeights(t *testing.T) {
	pts := BevelHexagonPoints(nil, 1, 0.9, hex.Origin())
	for i, pt := range pts[:8] {
		assert.InDelta(t, 0, pt.Y, 1e-6, "top point %d", i)
	}
	for i, pt := range pts[8:15] {
		assert.InDelta(t, -0.1, pt.Y, 1e-6, "slope point %d", i)
	}
	for i, pt := range pts[15:22] {
		assert.InDelta(t, -10, pt.Y, 1e-6, "skirt point %d", i)
	}

	// top face is shrunk to 0.9 of the ring radius
	assert.InDelta(t, 0.9, pts[1].Z, 1e-6)
	assert.InDelta(t, 1, pts[8].Z, 1e-6)
}

func TestBevelHexagonNormalBands(t *testing.T) {
	norms := BevelHexagonNormals(nil)
	for _, n := range norms[:8] {
		assert.Equal(t, math32.Vec3(0, 1, 0), n)
	}
	// slope normals tilt up by the same amount they point out,
	// approximating the true 45 degree face normal
	for i, n := range norms[8:15] {
		assert.InDelta(t, 0.707, n.Y, 1e-6, "slope normal %d", i)
		assert.InDelta(t, 0.707, math32.Sqrt(n.X*n.X+n.Z*n.Z), 1e-4, "slope normal %d", i)
	}
	// skirt normals point straight outward
	for i, n := range norms[15:22] {
		assert.Equal(t, float32(0), n.Y, "skirt normal %d", i)
		assert.InDelta(t, 1, math32.Sqrt(n.X*n.X+n.Z*n.Z), 1e-4, "skirt normal %d", i)
	}
}

func TestBevelHexagonIndexBands(t *testing.T) {
	idx := BevelHexagonIndexes(nil)

	// band 1: the flat top fan
	assert.Equal(t, FlatHexagonIndexes(nil), idx[:21])

	// band 2: first slope quad spans inner ring 1,2 to outer ring 8,9
	assert.Equal(t, []uint32{1, 8, 9, 1, 9, 2}, idx[21:27])

	// band 3: first skirt quad spans slope ring 8,9 to skirt ring 15,16
	assert.Equal(t, []uint32{8, 15, 16, 8, 16, 9}, idx[63:69])
}

func TestBuffersFreshPerCall(t *testing.T) {
	a := BevelHexagonPoints(nil, 1, 0.9, hex.Origin())
	b := BevelHexagonPoints(nil, 1, 0.9, hex.Origin())
	assert.Equal(t, a, b)
	b[0] = math32.Vec3(99, 99, 99)
	assert.NotEqual(t, a[0], b[0])
}

func TestDegenerateBevel(t *testing.T) {
	// bevel factors outside (0,1] are accepted and deterministic
	for _, factor := range []float32{0, -1, 2} {
		pts := BevelHexagonPoints(nil, 1, factor, hex.Origin())
		assert.Equal(t, 22, len(pts))
		assert.InDelta(t, factor-1, pts[8].Y, 1e-6)
	}
}
