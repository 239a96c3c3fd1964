// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"testing"

	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
)

func newUnitCube(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.NewGrid()
	var ids [8]int
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				ids[grid.VertPosOf(x, y, z)] = g.AddVertex(geom.NewVector3(float64(x), float64(y), float64(z)))
			}
		}
	}
	c := g.AddCell(ids)
	for i := 0; i < 12; i++ {
		c.SetRestEdgeLength(i, 1)
	}
	return g
}

// TestOctreeSplitRestLengthOneCube covers the boundary case of a
// rest-length-1 cell splitting into 8 sub-cells and 27 vertices, each
// sub-cell edge at rest length 0.5, and every sub-cell geometrically sound
// (positive volume, corners at their expected lattice positions).
func TestOctreeSplitRestLengthOneCube(t *testing.T) {
	g := newUnitCube(t)
	NewSplitter(g).SplitAll()

	if g.NumCells() != 8 {
		t.Fatalf("expected 8 sub-cells, got %d", g.NumCells())
	}
	if g.NumVertices() != 27 {
		t.Fatalf("expected 27 vertices, got %d", g.NumVertices())
	}
	if err := g.Verify(); err != nil {
		t.Fatalf("split grid failed verify: %v", err)
	}

	for _, c := range g.Cells() {
		for i := 0; i < 12; i++ {
			if got := c.RestEdgeLength(i); got != 0.5 {
				t.Fatalf("cell %d edge %d: expected rest length 0.5, got %v", c.Id(), i, got)
			}
		}
	}

	// Every corner of every sub-cell must land on the half-integer lattice
	// that a true 1->8 octree split of a unit cube produces; a wrong locus
	// entry would instead place some corner off that lattice or duplicate
	// another corner's position.
	seen := make(map[geom.Vector3]bool)
	for x := 0; x <= 2; x++ {
		for y := 0; y <= 2; y++ {
			for z := 0; z <= 2; z++ {
				seen[geom.NewVector3(float64(x)*0.5, float64(y)*0.5, float64(z)*0.5)] = true
			}
		}
	}
	for _, v := range g.Vertices() {
		if !seen[v.Pt()] {
			t.Fatalf("vertex at %v is not on the expected half-integer lattice", v.Pt())
		}
	}

	for _, c := range g.Cells() {
		vol := c.CalcVolume(g)
		if vol <= 0 {
			t.Fatalf("cell %d has non-positive volume %v", c.Id(), vol)
		}
		want := 0.125
		if diff := vol - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("cell %d: expected volume %v, got %v", c.Id(), want, vol)
		}
	}
}

// TestOctreeSplitAllDoublesCellCountAlongEveryAxis covers the idempotence
// property of repeated divide passes: splitting twice multiplies the cell
// count by 8 each time (doubling along every one of the three axes).
func TestOctreeSplitAllDoublesCellCountAlongEveryAxis(t *testing.T) {
	g := newUnitCube(t)
	s := NewSplitter(g)
	s.SplitAll()
	if g.NumCells() != 8 {
		t.Fatalf("expected 8 cells after first split, got %d", g.NumCells())
	}
	s2 := NewSplitter(g)
	s2.SplitAll()
	if g.NumCells() != 64 {
		t.Fatalf("expected 64 cells after second split, got %d", g.NumCells())
	}
	if err := g.Verify(); err != nil {
		t.Fatalf("twice-split grid failed verify: %v", err)
	}
}
