// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/optimize"
)

// SurfaceLocus is the read-only external service (§6) the gradient
// generator consults for clamps anchored to the surface model: the exact
// plane of a referenced triangle, and the current closest point and
// segment geometry of a referenced polyline. It is the consumed
// triangle-mesh-library API, out of scope for this package.
type SurfaceLocus interface {
	TriPlane(v0, v1, v2 int) geom.Plane
	PolylineSegment(meshIdx, polylineNumber, segIdx int) geom.LineSegment
	PolylineClosestPoint(meshIdx, polylineNumber int, pt geom.Vector3) (segIdx int, t, dist float64)
}

// ValueAt evaluates the per-vertex objective (energy) at a trial position.
type ValueAt func(pos geom.Vector3) float64

// noMove is the GradientFunc for clamps that forbid any movement.
func noMove(dt float64) (geom.Vector3, float64) { return geom.Vector3{}, 0 }

// GradientGenerator returns the GradientFunc enforcing v's clamp (§4.3):
// one behaviour per clamp tag. locus may be nil; it is only consulted for
// ClampTri and ClampEdge.
func GradientGenerator(v *Vertex, locus SurfaceLocus, value ValueAt) optimize.GradientFunc {
	c := v.Clamp()
	switch c.Tag {
	case ClampFixed, ClampVert, ClampCellEdgeCenter, ClampCellFaceCenter, ClampGridTriPlane:
		// Pinned to an exact, externally-derived locus: nothing for the
		// optimiser to do.
		return noMove

	case ClampNone:
		return freeGradient(v.Pt(), value)

	case ClampPerpendicular:
		return lineGradient(v.Pt(), c.Dir, value)

	case ClampParallel:
		return planeGradient(v.Pt(), c.Dir, value)

	case ClampTri:
		plane := locus.TriPlane(c.Indices[0], c.Indices[1], c.Indices[2])
		return planeGradient(v.Pt(), plane.Normal, value)

	case ClampEdge:
		return edgeGradient(v, locus, value)

	default:
		panic("grid: gradient generator has no rule for clamp tag")
	}
}

// axisDelta evaluates the central difference of value along axis i at p.
func axisDelta(p geom.Vector3, i int, dt float64, value ValueAt) float64 {
	var d geom.Vector3
	switch i {
	case 0:
		d = geom.VX
	case 1:
		d = geom.VY
	default:
		d = geom.VZ
	}
	return value(p.Add(d.Mul(dt))) - value(p.Sub(d.Mul(dt)))
}

// freeGradient samples three axis-aligned finite differences, normalises
// the result, and orients it so the line-search reads as descending: the
// optimiser always treats the returned direction as a move that should
// decrease value.
func freeGradient(p geom.Vector3, value ValueAt) optimize.GradientFunc {
	return func(dt float64) (geom.Vector3, float64) {
		g := geom.NewVector3(
			axisDelta(p, 0, dt, value),
			axisDelta(p, 1, dt, value),
			axisDelta(p, 2, dt, value),
		)
		if g.Norm() < 1e-15 {
			return geom.Vector3{}, 0
		}
		dir := g.Normalize().Mul(-1)
		return dir, 1e9
	}
}

// lineGradient restricts movement to the line through p along n (a
// Perpendicular clamp): the gradient is n itself, signed toward lower
// value.
func lineGradient(p geom.Vector3, n geom.Vector3, value ValueAt) optimize.GradientFunc {
	return func(dt float64) (geom.Vector3, float64) {
		n = n.Normalize()
		if value(p.Add(n.Mul(dt))) > value(p.Sub(n.Mul(dt))) {
			n = n.Mul(-1)
		}
		return n, 1e9
	}
}

// planeGradient restricts movement to the plane through p normal to n (a
// Parallel clamp, or a Tri clamp using its triangle normal): sample the
// in-plane finite differences along an orthonormal in-plane basis.
func planeGradient(p geom.Vector3, n geom.Vector3, value ValueAt) optimize.GradientFunc {
	n = n.Normalize()
	u, w := orthonormalBasis(n)
	return func(dt float64) (geom.Vector3, float64) {
		du := value(p.Add(u.Mul(dt))) - value(p.Sub(u.Mul(dt)))
		dw := value(p.Add(w.Mul(dt))) - value(p.Sub(w.Mul(dt)))
		g := u.Mul(du).Add(w.Mul(dw))
		if g.Norm() < 1e-15 {
			return geom.Vector3{}, 0
		}
		dir := g.Normalize().Mul(-1)
		return dir, 1e9
	}
}

// orthonormalBasis returns two unit vectors spanning the plane normal to n.
func orthonormalBasis(n geom.Vector3) (u, w geom.Vector3) {
	ref := geom.VX
	if n.Cross(ref).Norm() < 1e-6 {
		ref = geom.VY
	}
	u = n.Cross(ref).Normalize()
	w = n.Cross(u).Normalize()
	return
}

// edgeGradient implements the Edge clamp gradient of §4.3: consult the
// polyline for the vertex's current closest point; if it has drifted off
// the line beyond SAME_DIST_TOL, snap it back before offering a direction;
// otherwise offer the candidate within-segment (or, at a segment
// boundary, each neighbouring segment's interior) direction whose
// quadratic-line-search step is larger.
func edgeGradient(v *Vertex, locus SurfaceLocus, value ValueAt) optimize.GradientFunc {
	meshIdx, polylineNumber := v.Clamp().Indices[0], v.Clamp().Indices[1]
	return func(dt float64) (geom.Vector3, float64) {
		p := v.Pt()
		segIdx, t, dist := locus.PolylineClosestPoint(meshIdx, polylineNumber, p)
		if dist > geom.SameDistTol {
			seg := locus.PolylineSegment(meshIdx, polylineNumber, segIdx)
			_, _, closest := seg.ClosestPoint(p)
			v.SetPt(closest)
			p = closest
		}

		candidates := candidateSegments(locus, meshIdx, polylineNumber, segIdx, t)
		var best geom.Vector3
		bestStep := -1.0
		for _, seg := range candidates {
			dir := seg.Dir()
			if dir.Norm() < 1e-15 {
				continue
			}
			dir = dir.Normalize()
			step := quadraticStepEstimate(p, dir, dt, value)
			if step > bestStep {
				bestStep = step
				best = dir
			}
		}
		if bestStep <= 0 {
			return geom.Vector3{}, 0
		}
		return best, 1e9
	}
}

// candidateSegments returns the polyline segments whose interior the edge
// gradient is allowed to move into from parametric position t of segment
// segIdx: both neighbours at a segment boundary, or the segment itself
// when strictly interior.
func candidateSegments(locus SurfaceLocus, meshIdx, polylineNumber, segIdx int, t float64) []geom.LineSegment {
	const boundaryTol = 1e-9
	cur := locus.PolylineSegment(meshIdx, polylineNumber, segIdx)
	if t > boundaryTol && t < 1-boundaryTol {
		return []geom.LineSegment{cur}
	}
	var out []geom.LineSegment
	out = append(out, cur)
	if t <= boundaryTol && segIdx > 0 {
		out = append(out, locus.PolylineSegment(meshIdx, polylineNumber, segIdx-1))
	}
	if t >= 1-boundaryTol {
		out = append(out, locus.PolylineSegment(meshIdx, polylineNumber, segIdx+1))
	}
	return out
}

// quadraticStepEstimate mirrors optimize's parabola fit, used here only to
// rank candidate directions, not to take the step.
func quadraticStepEstimate(p, dir geom.Vector3, dt float64, value ValueAt) float64 {
	val1 := value(p)
	val0 := value(p.Sub(dir.Mul(dt))) - val1
	val2 := value(p.Add(dir.Mul(dt))) - val1
	a := (val2 + val0) / (2 * dt * dt)
	if a == 0 {
		return 0
	}
	b := (val2 - val0) / (2 * dt)
	return -b / (2 * a)
}
