// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestRippleHeight(t *testing.T) {
	// matches the three-wave sum at sampled points
	for _, tm := range []float32{0, 0.5, 1, 10, 123.25} {
		for _, x := range []float32{-20, -3.5, 0, 7} {
			for _, z := range []float32{-11, 0, 2.25, 19} {
				want := math32.Sin(tm/2+x/3+z/3)*0.1 - 0.05
				want += math32.Cos(tm+x/3-z/4)*0.1 - 0.05
				want += math32.Sin(tm*2+x/5-z/7)*0.1 - 0.05
				assert.Equal(t, want, RippleHeight(tm, x, z))
			}
		}
	}
}

func TestRippleHeightBounds(t *testing.T) {
	// each wave contributes [-0.15, 0.05], so the sum stays in
	// [-0.45, 0.15]
	for tm := float32(0); tm < 20; tm += 0.25 {
		for x := float32(-30); x < 30; x += 1.5 {
			for z := float32(-30); z < 30; z += 1.5 {
				h := RippleHeight(tm, x, z)
				assert.GreaterOrEqual(t, h, float32(-0.45))
				assert.LessOrEqual(t, h, float32(0.15))
			}
		}
	}
}

func TestRipplePure(t *testing.T) {
	// purely a function of (time, x, z): repeated calls agree
	assert.Equal(t, RippleHeight(3, 4, 5), RippleHeight(3, 4, 5))
}
