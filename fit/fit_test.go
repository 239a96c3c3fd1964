// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"testing"

	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/surface"
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

func TestProjectOntoConstraintPerpendicularProjectsOntoLine(t *testing.T) {
	v := grid.NewVertex(0, geom.NewVector3(1, 1, 1))
	v.SetClamp(grid.NewPerpendicularClamp(geom.VZ))
	hit := geom.NewVector3(5, -3, 9)
	got := projectOntoConstraint(v, hit)
	want := geom.NewVector3(1, 1, 9)
	if !geom.SamePoint(got, want) {
		t.Fatalf("expected projection %v, got %v", want, got)
	}
}

func TestProjectOntoConstraintParallelProjectsOntoPlane(t *testing.T) {
	v := grid.NewVertex(0, geom.NewVector3(1, 1, 1))
	v.SetClamp(grid.NewParallelClamp(geom.VZ))
	hit := geom.NewVector3(5, -3, 9)
	got := projectOntoConstraint(v, hit)
	want := geom.NewVector3(5, -3, 1)
	if !geom.SamePoint(got, want) {
		t.Fatalf("expected projection %v, got %v", want, got)
	}
}

func TestProjectOntoConstraintUnclampedPassesHitThrough(t *testing.T) {
	v := grid.NewVertex(0, geom.NewVector3(1, 1, 1))
	v.SetClamp(grid.NewNoneClamp())
	hit := geom.NewVector3(5, -3, 9)
	got := projectOntoConstraint(v, hit)
	if !geom.SamePoint(got, hit) {
		t.Fatalf("expected unclamped vertex to pass the hit point through unchanged, got %v", got)
	}
}

// TestFitWalksOntoPolylineAndClampsEndpoint covers §4.5's core walk: a
// polyline piercing a single cell's opposite faces through its interior
// (not through any existing vertex) must move at least one corner onto the
// polyline, record the pierced cell as touched, and force an Edge clamp
// onto the vertex nearest the polyline's far endpoint.
func TestFitWalksOntoPolylineAndClampsEndpoint(t *testing.T) {
	g := newUnitCube(t)
	poly := surface.NewStaticPolyline([]geom.Vector3{
		geom.NewVector3(0.5, 0.5, -1),
		geom.NewVector3(0.5, 0.5, 2),
	})

	result := Fit(g, poly, 0, 0)

	if result.Steps == 0 {
		t.Fatalf("expected at least one corner to be moved onto the polyline")
	}
	if len(result.TouchedCells) == 0 {
		t.Fatalf("expected the pierced cell to be reported as touched")
	}
	if err := g.Verify(); err != nil {
		t.Fatalf("grid failed verify after fitting: %v", err)
	}

	foundEdgeClamp := false
	for _, v := range g.Vertices() {
		if v.Clamp().Tag != grid.ClampEdge {
			continue
		}
		foundEdgeClamp = true
		_, dist, _ := poly.Segment(0).ClosestPoint(v.Pt())
		if dist > geom.SameDistTol {
			t.Fatalf("edge-clamped vertex at %v is not on the polyline (dist %v)", v.Pt(), dist)
		}
	}
	if !foundEdgeClamp {
		t.Fatalf("expected at least one vertex to carry an Edge clamp after fitting")
	}

	_, end := poly.Endpoints()
	endVert := nearestVertex(g, end)
	if !g.VertexAt(endVert).Clamp().Matches(alreadyFit) {
		t.Fatalf("expected the vertex nearest the polyline's endpoint to be clamped")
	}
}
