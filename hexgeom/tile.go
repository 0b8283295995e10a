// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hexgeom

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/hexworld/hex"
)

// Tile is the beveled hexagonal prism tile mesh: a flat hexagonal top
// face shrunk by the bevel factor, a 45 degree sloped band out to the
// full radius, and a deep skirt hiding seams between adjacent tiles at
// different heights. One Tile is normally generated as a template at
// the origin and shared by reference across all tile instances of one
// radius and bevel, with per-instance transforms doing the placement.
type Tile struct {
	ShapeBase

	// outer radius of the hexagon
	Radius float32

	// scaling factor for the top face, in (0, 1]: the top face has
	// radius Radius * Bevel
	Bevel float32

	// grid coordinate the mesh is generated at, normally the origin
	Coord hex.Coord
}

// NewTile returns a Tile shape with the given radius and bevel factor.
func NewTile(radius, bevel float32) *Tile {
	tl := &Tile{}
	tl.Defaults()
	tl.Radius = radius
	tl.Bevel = bevel
	return tl
}

func (tl *Tile) Defaults() {
	tl.Radius = 1
	tl.Bevel = 0.9
}

func (tl *Tile) N() (numVertex, numIndex int) {
	numVertex, numIndex = TileN()
	return
}

// Set sets tile points in the given allocated arrays.
func (tl *Tile) Set(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32) {
	tl.CBBox = SetTile(vertexArray, normArray, textureArray, indexArray, tl.VtxOff, tl.IndexOff, tl.Radius, tl.Bevel, tl.Coord, tl.Pos)
}

// TileN returns the number of vertex and index points for a beveled
// hexagon tile: 22 vertices and 105 indices (35 triangles).
func TileN() (numVertex, numIndex int) {
	return 22, 105
}

// SetTile sets beveled hexagon tile vertex, norm, tex, and index data
// at the given starting vertex index (multiply by 3 to get the actual
// float offset in the vertex array) and starting index index, for the
// given radius, bevel factor, and coordinate. pos is an arbitrary
// offset for composing shapes. Texture coordinates are all zero: the
// tile is flat-colored per instance. Returns the bounding box of the
// written points.
func SetTile(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32, vtxOff, idxOff int, radius, bevel float32, c hex.Coord, pos math32.Vector3) math32.Box3 {
	pts := BevelHexagonPoints(nil, radius, bevel, c)
	norms := BevelHexagonNormals(nil)

	bb := math32.B3Empty()
	vidx := vtxOff * 3
	tidx := vtxOff * 2
	for i, pt := range pts {
		pt.SetAdd(pos)
		vertexArray.SetVector3(vidx+i*3, pt)
		normArray.SetVector3(vidx+i*3, norms[i])
		textureArray.Set(tidx+i*2, 0, 0)
		bb.ExpandByPoint(pt)
	}

	vOff := uint32(vtxOff)
	for i, ix := range BevelHexagonIndexes(nil) {
		indexArray.Set(idxOff+i, vOff+ix)
	}
	return bb
}
