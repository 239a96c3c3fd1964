// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bytes"
	"testing"

	"github.com/cpmech/hexmesh/geom"
)

func newUnitCube(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid()
	var ids [8]int
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				ids[VertPosOf(x, y, z)] = g.AddVertex(geom.NewVector3(float64(x), float64(y), float64(z)))
			}
		}
	}
	g.AddCell(ids)
	return g
}

func TestUnitCubeVerify(t *testing.T) {
	g := newUnitCube(t)
	if err := g.Verify(); err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if g.NumVertices() != 8 || g.NumCells() != 1 {
		t.Fatalf("unexpected sizes: %d verts, %d cells", g.NumVertices(), g.NumCells())
	}
}

func TestRemoveCellCompaction(t *testing.T) {
	g := newUnitCube(t)
	id := g.CellAt(0).Id()
	g.RemoveCell(id)
	if g.NumCells() != 0 {
		t.Fatalf("expected no cells after removal, got %d", g.NumCells())
	}
	if g.CellByID(id) != nil {
		t.Fatalf("expected removed cell id to resolve to nil")
	}
	for _, v := range g.Vertices() {
		if v.NumCells() != 0 {
			t.Fatalf("expected vertex backlinks cleared after cell removal")
		}
	}
}

func TestMoveVertexFuseRejected(t *testing.T) {
	g := newUnitCube(t)
	if g.MoveVertex(0, g.VertexAt(1).Pt()) {
		t.Fatalf("expected move onto an existing vertex to be rejected")
	}
	if g.MoveVertex(0, geom.NewVector3(0.1, 0, 0)) != true {
		t.Fatalf("expected a non-fusing move to succeed")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := newUnitCube(t)
	var buf bytes.Buffer
	if err := g.Save(&buf); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.NumVertices() != g.NumVertices() || loaded.NumCells() != g.NumCells() {
		t.Fatalf("round trip changed grid size")
	}
	if err := loaded.Verify(); err != nil {
		t.Fatalf("round-tripped grid failed verify: %v", err)
	}
}
