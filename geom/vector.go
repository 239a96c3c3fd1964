// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometric primitives shared by the rest of
// hexmesh: vectors, bounding boxes, line segments, planes and triangle
// normals.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vector3 is a double-precision 3-vector. It is a direct alias of
// r3.Vector so that hexmesh gets Add/Sub/Dot/Cross/Norm/Normalize without
// reimplementing them.
type Vector3 = r3.Vector

// SameDistTol is the tolerance under which two points, or a point and a
// locus, are considered geometrically coincident.
const SameDistTol = 1.0e-6

// SameDistTolSqr is SameDistTol squared, for squared-distance comparisons.
const SameDistTolSqr = SameDistTol * SameDistTol

// VX, VY, VZ are the principal axis directions.
var (
	VX = Vector3{X: 1, Y: 0, Z: 0}
	VY = Vector3{X: 0, Y: 1, Z: 0}
	VZ = Vector3{X: 0, Y: 0, Z: 1}
)

// NewVector3 builds a vector from components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// IsFinite reports whether every component of v is finite (V1).
func IsFinite(v Vector3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// SamePoint reports whether a and b coincide within SameDistTol.
func SamePoint(a, b Vector3) bool {
	return a.Sub(b).Norm2() < SameDistTolSqr
}

// Component returns the i'th component of v (0=X, 1=Y, 2=Z).
func Component(v Vector3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vector3) Vector3 {
	return Vector3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Vector3) Vector3 {
	return Vector3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// NearestAxis returns the principal axis (0, 1 or 2) most closely aligned
// with v, and the sign of that alignment.
func NearestAxis(v Vector3) (axis int, sign float64) {
	u := v.Normalize()
	best := 0
	bestAbs := math.Abs(u.X)
	if math.Abs(u.Y) > bestAbs {
		best, bestAbs = 1, math.Abs(u.Y)
	}
	if math.Abs(u.Z) > bestAbs {
		best, bestAbs = 2, math.Abs(u.Z)
	}
	s := Component(u, best)
	if s < 0 {
		return best, -1
	}
	return best, 1
}
