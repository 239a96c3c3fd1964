// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"math"
	"testing"

	"github.com/cpmech/hexmesh/geom"
)

// TestSteepestDescentConvergesToQuadraticMinimum covers the centroid-return
// boundary property: starting off a known minimum and descending a bowl
// whose minimum is the origin, the vertex returns to within 1e-4 of it.
func TestSteepestDescentConvergesToQuadraticMinimum(t *testing.T) {
	target := geom.NewVector3(0, 0, 0)
	value := func(p geom.Vector3) float64 {
		return p.Sub(target).Norm2()
	}

	p := geom.NewVector3(1, 0, 0)
	grad := func(dt float64) (geom.Vector3, float64) {
		dir := target.Sub(p)
		if dir.Norm() < minNormalizeDivisor {
			return geom.Vector3{}, 0
		}
		return dir.Normalize(), 10
	}

	opt := NewSteepestDescent(0)
	opt.Run(&p, 200, 10, value, grad, nil)

	if d := p.Sub(target).Norm(); d > 1e-4 {
		t.Fatalf("expected convergence to target within 1e-4, got distance %v (p=%v)", d, p)
	}
}

// TestSteepestDescentStopsWhenGradientExhausted covers the maxDist == 0
// stop condition: the optimiser must not move the point at all once the
// caller's clamp reports no further progress is possible.
func TestSteepestDescentStopsWhenGradientExhausted(t *testing.T) {
	p := geom.NewVector3(1, 2, 3)
	start := p
	value := func(geom.Vector3) float64 { return 0 }
	grad := func(dt float64) (geom.Vector3, float64) { return geom.Vector3{}, 0 }

	opt := NewSteepestDescent(0)
	moved := opt.Run(&p, 50, 1, value, grad, nil)

	if moved != 0 || p != start {
		t.Fatalf("expected no movement when gradFn reports maxDist 0, moved=%v p=%v", moved, p)
	}
}

// TestSteepestDescentRespectsMaxChange covers the cumulative-displacement
// cap: a bowl far from its minimum, descended with a clamp that never
// itself limits the step, never lets the point drift past maxChange from
// its start.
func TestSteepestDescentRespectsMaxChange(t *testing.T) {
	start := geom.NewVector3(100, 0, 0)
	p := start
	value := func(pos geom.Vector3) float64 { return pos.X * pos.X }
	grad := func(dt float64) (geom.Vector3, float64) { return geom.NewVector3(-1, 0, 0), 1000 }

	opt := NewSteepestDescent(0)
	maxChange := 0.5
	opt.Run(&p, 1000, maxChange, value, grad, nil)

	if d := p.Sub(start).Norm(); d > maxChange+1e-9 {
		t.Fatalf("expected displacement capped at %v, got %v", maxChange, d)
	}
}

func TestCalcMoveDistFlatFunctionReturnsZero(t *testing.T) {
	p := geom.NewVector3(0, 0, 0)
	dir := geom.NewVector3(1, 0, 0)
	flat := func(geom.Vector3) float64 { return 0 }
	if got := calcMoveDist(p, dir, 1e-8, flat); got != 0 {
		t.Fatalf("expected zero move distance for a flat function, got %v", got)
	}
}

// TestCalcMoveDistNonFiniteOffsetPanics feeds a function that evaluates to
// NaN on one of the parabola fit's three sample points, driving the fitted
// stationary point itself to NaN.
func TestCalcMoveDistNonFiniteOffsetPanics(t *testing.T) {
	p := geom.NewVector3(0, 0, 0)
	dir := geom.NewVector3(1, 0, 0)
	tainted := func(pos geom.Vector3) float64 {
		if pos.X < 0 {
			return math.NaN()
		}
		if pos.X == 0 {
			return 1
		}
		return 2
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on a non-finite move distance")
		}
	}()
	calcMoveDist(p, dir, 1e-8, tainted)
}
