// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

// Direction is a direction of travel on a hex grid.
type Direction int32 //enums:enum

const (
	// None is the absence of a direction; it maps a coordinate to itself.
	None Direction = iota

	// North is one step north, decreasing r.
	North

	// South is one step south, increasing r.
	South

	// Northeast is one step northeast, increasing q and decreasing r.
	Northeast

	// Southwest is one step southwest, decreasing q and increasing r.
	Southwest

	// Northwest is one step northwest, decreasing q.
	Northwest

	// Southeast is one step southeast, increasing q.
	Southeast
)

// Directions contains the six real directions in clockwise visual order
// starting at north, for convenient enumeration. [Coord.Neighbors]
// follows this order exactly.
var Directions = []Direction{North, Northeast, Southeast, South, Southwest, Northwest}

// Opposite returns the direction that undoes travel in this direction.
// It is an involution: d.Opposite().Opposite() == d. [None] is its own
// opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	}
	return None
}
