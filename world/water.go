// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import "cogentcore.org/core/math32"

// RippleHeight returns the vertical position of a water tile at time t
// (seconds) and world position x, z: the sum of three low sine and
// cosine waves with different speeds and spatial periods. It is a pure
// function of its arguments, keeping no state between frames; an
// animation layer overwrites each water tile's y with it once per
// frame.
func RippleHeight(t, x, z float32) float32 {
	ripple1 := math32.Sin(t/2+x/3+z/3)*0.1 - 0.05
	ripple2 := math32.Cos(t+x/3-z/4)*0.1 - 0.05
	ripple3 := math32.Sin(t*2+x/5-z/7)*0.1 - 0.05
	return ripple1 + ripple2 + ripple3
}
