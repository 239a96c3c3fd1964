// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the read-only interfaces the core consumes from
// the triangle-mesh library (§6): STL parsing, sharp-edge extraction,
// polyline chaining and querying, and triangle-segment intersection all
// live outside this module's scope. What's here is the seam — the
// interfaces — plus a minimal in-memory implementation used by this
// module's own tests, standing in for the real library.
package surface

import "github.com/cpmech/hexmesh/geom"

// Triangle is a single surface facet.
type Triangle struct {
	V0, V1, V2 geom.Vector3
}

// Plane returns the plane of t.
func (t Triangle) Plane() geom.Plane {
	return geom.NewPlane(t.V0, geom.TriangleNormal(t.V0, t.V1, t.V2))
}

// Polyline is a consumed chain of sharp-edge segments (the output of
// find_sharp_edges + chaining).
type Polyline interface {
	// NumSegments returns the number of segments in the polyline.
	NumSegments() int
	// Segment returns segment i (0 <= i < NumSegments()).
	Segment(i int) geom.LineSegment
	// ClosestPoint returns the segment index, parametric position, and
	// distance of the polyline point nearest pt.
	ClosestPoint(pt geom.Vector3) (segIdx int, t, dist float64)
	// Endpoints returns the polyline's two free ends (coincident for a
	// closed loop).
	Endpoints() (start, end geom.Vector3)
}

// Model is the consumed read-only service a surface model offers the
// pipeline driver (§6).
type Model interface {
	// FindSharpEdges returns polylines for every sharp-edge chain whose
	// dihedral angle's sine exceeds sinTheta.
	FindSharpEdges(sinTheta float64) []Polyline
	// Cusps returns isolated high-curvature points (polyline junctions
	// and free ends) that should be individually clamped.
	Cusps() []geom.Vector3
	// BoundingBox returns the model's extent.
	BoundingBox() geom.BoundingBox
	// FindMinGap returns the smallest surface-to-surface gap. Nothing in
	// this module calls it.
	FindMinGap() float64
	// IntersectSegment tests seg against every facet, returning the
	// nearest hit.
	IntersectSegment(seg geom.LineSegment) (hit geom.RayHit, tri Triangle, ok bool)
}

// StaticPolyline is an in-memory Polyline over an explicit vertex chain,
// used by this module's tests in place of the real chainer.
type StaticPolyline struct {
	Verts []geom.Vector3
}

// NewStaticPolyline returns a polyline through verts in order.
func NewStaticPolyline(verts []geom.Vector3) *StaticPolyline {
	return &StaticPolyline{Verts: verts}
}

// NumSegments implements Polyline.
func (p *StaticPolyline) NumSegments() int { return len(p.Verts) - 1 }

// Segment implements Polyline.
func (p *StaticPolyline) Segment(i int) geom.LineSegment {
	return geom.NewLineSegment(p.Verts[i], p.Verts[i+1])
}

// Endpoints implements Polyline.
func (p *StaticPolyline) Endpoints() (start, end geom.Vector3) {
	return p.Verts[0], p.Verts[len(p.Verts)-1]
}

// ClosestPoint implements Polyline by scanning every segment.
func (p *StaticPolyline) ClosestPoint(pt geom.Vector3) (segIdx int, t, dist float64) {
	best := -1
	bestT, bestDist := 0.0, 0.0
	for i := 0; i < p.NumSegments(); i++ {
		st, sd, _ := p.Segment(i).ClosestPoint(pt)
		if best < 0 || sd < bestDist {
			best, bestT, bestDist = i, st, sd
		}
	}
	return best, bestT, bestDist
}

// StaticModel is an in-memory Model over an explicit triangle soup and
// precomputed polylines/cusps, used by this module's tests.
type StaticModel struct {
	Triangles  []Triangle
	PolylinesS []Polyline
	CuspsS     []geom.Vector3
	MinGap     float64
}

// FindSharpEdges implements Model by ignoring sinTheta and returning the
// precomputed set (the real chainer's job, out of scope here).
func (m *StaticModel) FindSharpEdges(sinTheta float64) []Polyline { return m.PolylinesS }

// Cusps implements Model.
func (m *StaticModel) Cusps() []geom.Vector3 { return m.CuspsS }

// FindMinGap implements Model.
func (m *StaticModel) FindMinGap() float64 { return m.MinGap }

// BoundingBox implements Model by enclosing every triangle vertex.
func (m *StaticModel) BoundingBox() geom.BoundingBox {
	if len(m.Triangles) == 0 {
		return geom.BoundingBox{}
	}
	bb := geom.NewBoundingBox(m.Triangles[0].V0)
	for _, t := range m.Triangles {
		bb.Grow(t.V0)
		bb.Grow(t.V1)
		bb.Grow(t.V2)
	}
	return bb
}

// IntersectSegment implements Model by testing every facet linearly.
func (m *StaticModel) IntersectSegment(seg geom.LineSegment) (geom.RayHit, Triangle, bool) {
	var bestHit geom.RayHit
	var bestTri Triangle
	found := false
	for _, tri := range m.Triangles {
		if hit, ok := seg.IntersectTriangle(tri.V0, tri.V1, tri.V2); ok {
			if !found || hit.T < bestHit.T {
				bestHit, bestTri, found = hit, tri, true
			}
		}
	}
	return bestHit, bestTri, found
}
