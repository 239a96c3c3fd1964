// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"math"

	"github.com/cpmech/hexmesh/energy"
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/optimize"
)

func cellByIndex(g *grid.Grid) energy.CellByIndex {
	return func(cellIdx int) energy.CellSource { return g.CellByID(cellIdx) }
}

// vertexValue returns the ValueAt energy.VertexEnergy puts at a trial
// position for vert, every other incident vertex read from its current
// canonical position. A position bad enough to trip energy's numerical
// guard scores as +Inf, mirroring fit.trialBendEnergy's treatment of the
// same guard.
func vertexValue(g *grid.Grid, vert *grid.Vertex) grid.ValueAt {
	idx := vert.Index()
	return func(pos geom.Vector3) (e float64) {
		defer func() {
			if recover() != nil {
				e = math.Inf(1)
			}
		}()
		posFn := func(vi int) geom.Vector3 {
			if vi == idx {
				return pos
			}
			return g.VertexAt(vi).Pt()
		}
		return energy.VertexEnergy(vert, cellByIndex(g), posFn)
	}
}

// optimizeVertexFunc returns the RelaxPass worker callback that runs one
// steepest-descent pass per vertex, confined to its assigned scratch slot
// (§4.3, §5): the gradient is generated against the vertex's canonical
// (slot 0) position and clamp, frozen for the duration of the pass, and
// the resulting move is written back to the worker's own slot only.
func optimizeVertexFunc(g *grid.Grid, locus *modelLocus, maxSteps int, maxChange float64) func(v *grid.Vertex, slot int) {
	opt := optimize.NewSteepestDescent(0)
	return func(v *grid.Vertex, slot int) {
		value := vertexValue(g, v)
		gradFn := grid.GradientGenerator(v, locus, value)
		p := v.SlotPt(slot)
		opt.Run(&p, maxSteps, maxChange, optimize.ValueFunc(value), gradFn, nil)
		v.SetSlotPt(slot, p)
	}
}
