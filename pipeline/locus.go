// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/surface"
)

// modelLocus adapts a list of surface models into the grid.SurfaceLocus
// seam the gradient generator consults for Tri/Edge clamps: meshIdx
// indexes into models, polylineNumber into that model's FindSharpEdges
// result at the run's fixed sharp-angle threshold.
type modelLocus struct {
	g          *grid.Grid
	models     []surface.Model
	polylines  [][]surface.Polyline
}

func newModelLocus(g *grid.Grid, models []surface.Model, sinSharp float64) *modelLocus {
	m := &modelLocus{g: g, models: models, polylines: make([][]surface.Polyline, len(models))}
	for i, model := range models {
		m.polylines[i] = model.FindSharpEdges(sinSharp)
	}
	return m
}

// PolylineSegment implements grid.SurfaceLocus.
func (m *modelLocus) PolylineSegment(meshIdx, polylineNumber, segIdx int) geom.LineSegment {
	return m.polylines[meshIdx][polylineNumber].Segment(segIdx)
}

// PolylineClosestPoint implements grid.SurfaceLocus.
func (m *modelLocus) PolylineClosestPoint(meshIdx, polylineNumber int, pt geom.Vector3) (segIdx int, t, dist float64) {
	return m.polylines[meshIdx][polylineNumber].ClosestPoint(pt)
}

// TriPlane implements grid.SurfaceLocus. ClampTri is never produced by
// this module's own stages (the triangle-mesh library's plane-snapping
// pass is out of scope, §1), so this falls back to treating the indices
// as grid vertex indices, consistent with ClampGridTriPlane's meaning.
func (m *modelLocus) TriPlane(v0, v1, v2 int) geom.Plane {
	p0 := m.g.VertexAt(v0).Pt()
	p1 := m.g.VertexAt(v1).Pt()
	p2 := m.g.VertexAt(v2).Pt()
	return geom.NewPlane(p0, geom.TriangleNormal(p0, p1, p2))
}

// Polylines returns model meshIdx's cached polyline set.
func (m *modelLocus) Polylines(meshIdx int) []surface.Polyline { return m.polylines[meshIdx] }
