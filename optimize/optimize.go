// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimize implements the generic one-vertex steepest-descent
// optimiser (C6): a quadratic line-search along a caller-supplied gradient
// direction, clamped by the caller's own notion of how far it is safe to
// move before hitting a geometric discontinuity.
package optimize

import (
	"math"

	"github.com/cpmech/hexmesh/geom"
)

// tol is OPTIMIZER_TOL: the per-step move distance below which the
// optimiser considers itself converged.
const tol = 1.0e-6

// minNormalizeDivisor guards the parabola fit and the value function
// against dividing by a value indistinguishable from zero.
const minNormalizeDivisor = 1.0e-12

// ValueFunc evaluates the objective (typically per-vertex energy) at a
// trial position.
type ValueFunc func(pos geom.Vector3) float64

// GradientFunc returns a unit direction to move along and the maximum
// distance the caller's clamp permits before hitting a discontinuity
// (a model corner, a polyline end). maxDist == 0 means no further
// progress is possible and the optimiser should stop.
type GradientFunc func(dt float64) (dir geom.Vector3, maxDist float64)

// LogFunc is called once per accepted step with the step count and the
// distance moved.
type LogFunc func(step int, moveDist float64)

// SteepestDescent runs the one-vertex optimiser of C6.
type SteepestDescent struct {
	// Dt is the differential used by both the parabola fit and the
	// gradient generator.
	Dt float64
}

// NewSteepestDescent returns an optimiser using differential dt (pass 0 to
// use the default, 1e-4).
func NewSteepestDescent(dt float64) *SteepestDescent {
	if dt == 0 {
		dt = 1.0e-4
	}
	return &SteepestDescent{Dt: dt}
}

// calcMoveDist fits a parabola through f(p-dt*dir), f(p), f(p+dt*dir) and
// returns the offset of its stationary point, or 0 when f(p) itself or the
// fitted curvature is within minNormalizeDivisor of zero.
func calcMoveDist(p, dir geom.Vector3, dt float64, f ValueFunc) float64 {
	val1 := f(p)
	if math.Abs(val1) < minNormalizeDivisor {
		return 0
	}
	val0 := f(p.Sub(dir.Mul(dt))) - val1
	val2 := f(p.Add(dir.Mul(dt))) - val1

	a := (val2 + val0) / (2 * dt * dt)
	if math.Abs(a) < minNormalizeDivisor {
		return 0
	}
	b := (val2 - val0) / (2 * dt)
	moveDist := -b / (2 * a)
	if math.IsNaN(moveDist) || math.IsInf(moveDist, 0) {
		panic("optimize: non-finite move distance")
	}
	return moveDist
}

// Run steps p, in place, toward a local minimum of f subject to gradFn's
// per-step clamp, for at most maxSteps iterations or until the cumulative
// displacement from the start would exceed maxChange. It returns the total
// distance moved.
func (o *SteepestDescent) Run(p *geom.Vector3, maxSteps int, maxChange float64, f ValueFunc, gradFn GradientFunc, log LogFunc) float64 {
	start := *p
	maxStep := 0.2 * maxChange
	moveDist := math.MaxFloat64

	for count := 0; count < maxSteps && moveDist > tol; count++ {
		dir, maxDist := gradFn(o.Dt)
		if maxDist == 0 {
			break
		}

		moveDist = calcMoveDist(*p, dir, o.Dt, f)
		if moveDist > maxStep {
			moveDist = maxStep
		}

		if moveDist > maxDist {
			*p = p.Add(dir.Mul(maxDist))
			continue
		}

		next := p.Add(dir.Mul(moveDist))
		if next.Sub(start).Norm() > maxChange {
			break
		}
		*p = next
		if log != nil {
			log(count, moveDist)
		}
	}

	return p.Sub(start).Norm()
}
