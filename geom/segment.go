// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// LineSegment is a straight segment between two points, used both for
// polyline segments (consumed from the surface model) and for grid edges.
type LineSegment struct {
	A, B Vector3
}

// NewLineSegment returns the segment from a to b.
func NewLineSegment(a, b Vector3) LineSegment {
	return LineSegment{A: a, B: b}
}

// Dir returns the (non-unit) direction from A to B.
func (s LineSegment) Dir() Vector3 {
	return s.B.Sub(s.A)
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.Dir().Norm()
}

// Center returns the segment midpoint.
func (s LineSegment) Center() Vector3 {
	return s.A.Add(s.B).Mul(0.5)
}

// ClosestPoint returns the parametric position t in [0,1] of the point on
// the segment nearest pt, the distance to it, and the point itself.
func (s LineSegment) ClosestPoint(pt Vector3) (t, dist float64, closest Vector3) {
	d := s.Dir()
	len2 := d.Dot(d)
	if len2 < SameDistTolSqr {
		t = 0
		closest = s.A
		dist = pt.Sub(s.A).Norm()
		return
	}
	t = pt.Sub(s.A).Dot(d) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest = s.A.Add(d.Mul(t))
	dist = pt.Sub(closest).Norm()
	return
}

// BoundingBox returns the box enclosing the segment.
func (s LineSegment) BoundingBox() BoundingBox {
	return NewBoundingBoxFromCorners(s.A, s.B)
}

// RayHit is the result of a segment-triangle intersection test.
type RayHit struct {
	Point Vector3
	T     float64 // parametric position of the hit along the segment
}

// IntersectTriangle tests whether segment s crosses the triangle (p0,p1,p2),
// returning the hit point when it does. Uses the Möller–Trumbore algorithm
// restricted to t in [0,1] (a genuine segment, not an infinite ray).
func (s LineSegment) IntersectTriangle(p0, p1, p2 Vector3) (hit RayHit, ok bool) {
	const eps = 1e-12
	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)
	dir := s.Dir()
	h := dir.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < eps {
		return hit, false
	}
	f := 1.0 / a
	tvec := s.A.Sub(p0)
	u := f * tvec.Dot(h)
	if u < 0 || u > 1 {
		return hit, false
	}
	q := tvec.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return hit, false
	}
	t := f * edge2.Dot(q)
	if t < 0 || t > 1 {
		return hit, false
	}
	hit.Point = s.A.Add(dir.Mul(t))
	hit.T = t
	return hit, true
}

// TriangleNormal returns the (non-unit) normal of the triangle (p0,p1,p2)
// following the right-hand rule.
func TriangleNormal(p0, p1, p2 Vector3) Vector3 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// TriangleArea returns the area of the triangle (p0,p1,p2).
func TriangleArea(p0, p1, p2 Vector3) float64 {
	return 0.5 * TriangleNormal(p0, p1, p2).Norm()
}

// Plane is an infinite plane given by a point on it and a unit normal.
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane returns the plane through p with the given (not necessarily
// unit) normal.
func NewPlane(p, normal Vector3) Plane {
	return Plane{Point: p, Normal: normal.Normalize()}
}

// Project returns the projection of pt onto the plane.
func (p Plane) Project(pt Vector3) Vector3 {
	d := pt.Sub(p.Point).Dot(p.Normal)
	return pt.Sub(p.Normal.Mul(d))
}

// SignedDistance returns the signed distance from pt to the plane.
func (p Plane) SignedDistance(pt Vector3) float64 {
	return pt.Sub(p.Point).Dot(p.Normal)
}
