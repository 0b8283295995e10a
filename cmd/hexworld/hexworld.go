// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hexworld inspects procedurally generated hex tile worlds:
// it reports the composition of generated levels and the buffer sizes
// of the shared tile mesh, for checking generator changes without a
// renderer in the loop.
package main

import (
	"fmt"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"

	"cogentcore.org/hexworld/hexgeom"
	"cogentcore.org/hexworld/world"
)

// Config is the configuration information for the hexworld command.
type Config struct {

	// Size is the level half-width: tiles are generated for q and r
	// in [-Size, Size).
	Size int `default:"15"`

	// Seed is the random seed for level generation.
	Seed int64 `default:"1"`

	// Radius is the outer radius of each hex tile.
	Radius float32 `default:"1"`

	// Bevel is the bevel factor for the tile top face, in (0, 1].
	Bevel float32 `default:"0.9"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("hexworld", "Inspect procedurally generated hex tile worlds.")
	opts.DefaultFiles = []string{"hexworld.toml"}
	cli.Run(opts, &Config{}, Level, Mesh)
}

// Level generates a sample level and reports its tile composition and
// height range.
//
//cli:cmd -root
func Level(c *Config) error {
	tiles := world.Generate(c.Size, c.Seed)
	logx.PrintfDebug("generated %d tiles for size %d seed %d\n", len(tiles), c.Size, c.Seed)

	counts := map[world.Tiles]int{}
	min, max := math32.Infinity, -math32.Infinity
	for _, tl := range tiles {
		counts[tl.Kind]++
		min = math32.Min(min, tl.Height)
		max = math32.Max(max, tl.Height)
	}
	fmt.Printf("%d tiles (seed %d)\n", len(tiles), c.Seed)
	for _, k := range world.TilesValues() {
		fmt.Printf("%-8v %5d  %s\n", k, counts[k], colorHex(k))
	}
	fmt.Printf("heights: %g to %g\n", min, max)
	return nil
}

// Mesh reports the vertex, normal, and index buffer sizes and the
// bounding box of the shared beveled tile mesh.
func Mesh(c *Config) error {
	if c.Bevel <= 0 || c.Bevel > 1 {
		logx.PrintlnWarn("bevel factor outside (0, 1] produces degenerate geometry")
	}
	tl := hexgeom.NewTile(c.Radius, c.Bevel)
	nv, ni := tl.N()
	vertex := math32.NewArrayF32(nv*3, nv*3)
	norm := math32.NewArrayF32(nv*3, nv*3)
	texture := math32.NewArrayF32(nv*2, nv*2)
	index := math32.NewArrayU32(ni, ni)
	tl.Set(vertex, norm, texture, index)

	bb := tl.BBox()
	fmt.Printf("radius %g bevel %g: %d vertices, %d indices, %d triangles\n", c.Radius, c.Bevel, nv, ni, ni/3)
	fmt.Printf("bounds: %v to %v\n", bb.Min, bb.Max)
	return nil
}

func colorHex(k world.Tiles) string {
	cl := k.Color()
	return fmt.Sprintf("#%02X%02X%02X", cl.R, cl.G, cl.B)
}
