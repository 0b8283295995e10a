// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hexgeom

import "cogentcore.org/core/math32"

// Shape is an interface for all shape-constructing elements.
// Shapes know their sizes in advance and write their data into shared
// preallocated arrays at their offsets, so multiple shapes can be
// composed into a single set of buffers for the renderer.
type Shape interface {
	// N returns the number of vertex and index points in this shape element.
	N() (numVertex, numIndex int)

	// Offs returns starting offsets for vertices and indexes in the full
	// shape arrays, in terms of points, not floats.
	Offs() (vtxOff, idxOff int)

	// SetOffs sets starting offsets for vertices and indexes in the full
	// shape arrays, in terms of points, not floats.
	SetOffs(vtxOff, idxOff int)

	// Set sets points in the given allocated arrays.
	Set(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32)

	// BBox returns the bounding box for the shape, typically centered
	// around 0. This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element.
type ShapeBase struct {
	// vertex offset, in points
	VtxOff int

	// index offset, in points
	IndexOff int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offs returns starting offsets for vertices and indexes in the full
// shape arrays, in terms of points, not floats.
func (sb *ShapeBase) Offs() (vtxOff, idxOff int) {
	vtxOff, idxOff = sb.VtxOff, sb.IndexOff
	return
}

// SetOffs sets starting offsets for vertices and indexes in the full
// shape arrays.
func (sb *ShapeBase) SetOffs(vtxOff, idxOff int) {
	sb.VtxOff, sb.IndexOff = vtxOff, idxOff
}

// BBox returns the bounding box for the shape, typically centered
// around 0. This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Group is a group of shapes, each of which writes at sequential
// offsets into the same set of arrays.
type Group struct {
	ShapeBase

	// list of shapes in the group
	Shapes []Shape
}

// N returns the total number of vertex and index points over all
// shapes in the group.
func (gp *Group) N() (numVertex, numIndex int) {
	for _, sh := range gp.Shapes {
		nv, ni := sh.N()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets points in the given allocated arrays, also updating the
// offsets of each member shape.
func (gp *Group) Set(vertexArray, normArray, textureArray math32.ArrayF32, indexArray math32.ArrayU32) {
	vo, io := gp.VtxOff, gp.IndexOff
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		sh.SetOffs(vo, io)
		sh.Set(vertexArray, normArray, textureArray, indexArray)
		gp.CBBox.ExpandByBox(sh.BBox())
		nv, ni := sh.N()
		vo += nv
		io += ni
	}
}
