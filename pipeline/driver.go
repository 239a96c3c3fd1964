// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline implements the seven-stage mesh-generation driver (C9,
// §4.6): building the initial lattice, classifying and snapping boundary
// clamps, the relax/fit/divide passes, and the cancellation seam a long
// run is polled through.
package pipeline

import (
	"math"

	"github.com/cpmech/hexmesh/fit"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/inp"
	"github.com/cpmech/hexmesh/split"
	"github.com/cpmech/hexmesh/surface"
)

// maxFitsPerPass bounds how many polylines stage 5 fits in one pass,
// keeping a single pass's divide-pass fallout bounded (§4.6 stage 5).
const maxFitsPerPass = 3

// relaxSteps is OPTIMIZER's per-vertex step budget for a relax pass
// (§4.6 stages 4 and 6).
const relaxSteps = 50

// Reporter is the driver's progress and cancellation seam (§5): Log is
// called once per stage with a short human-readable note, and IsRunning
// is polled at every stage boundary so a caller can stop a run between
// stages (the CLI's own reporter never does).
type Reporter interface {
	Log(stage, detail string)
	IsRunning() bool
}

// nopReporter is used when the caller passes a nil Reporter.
type nopReporter struct{}

func (nopReporter) Log(stage, detail string) {}
func (nopReporter) IsRunning() bool          { return true }

// Driver owns one meshing run's parameters and input surface models.
type Driver struct {
	params   *inp.Params
	models   []surface.Model
	reporter Reporter
}

// NewDriver returns a driver for params over models, reporting progress
// and cancellation through reporter (nil uses a no-op that always
// reports running).
func NewDriver(params *inp.Params, models []surface.Model, reporter Reporter) *Driver {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Driver{params: params, models: models, reporter: reporter}
}

// Run executes the seven-stage pipeline and returns the finished grid, or
// the grid as of the last completed stage if the reporter signalled
// cancellation.
func (d *Driver) Run() (*grid.Grid, error) {
	p := d.params
	d.reporter.Log("build", "constructing initial lattice")
	g := buildInitialGrid(p)
	if err := verifyZeroEnergy(g); err != nil {
		return nil, err
	}
	if !d.reporter.IsRunning() {
		return g, nil
	}

	d.reporter.Log("boundary", "classifying boundary clamps")
	classifyBoundaryClamps(g)
	if !d.reporter.IsRunning() {
		return g, nil
	}

	d.reporter.Log("cusps", "snapping surface cusps")
	for _, m := range d.models {
		snapCusps(g, m.Cusps(), p.MaxEdgeLength)
	}
	if !d.reporter.IsRunning() {
		return g, nil
	}

	locus := newModelLocus(g, d.models, p.SinSharpAngle())
	maxChange := 0.5 * p.MinEdgeLength

	d.reporter.Log("relax", "pre-fit relaxation")
	g.RelaxPass(grid.NumWorkers, optimizeVertexFunc(g, locus, relaxSteps, maxChange))
	if !d.reporter.IsRunning() {
		return g, nil
	}

	rounds := calcDivideRounds(p.MaxEdgeLength, p.MinEdgeLength)
	for round := 0; round < rounds; round++ {
		d.reporter.Log("fit", "fitting polylines to sharp edges")
		touched := d.fitPass(g, locus)
		if !d.reporter.IsRunning() {
			return g, nil
		}
		if len(touched) > 0 {
			split.NewSplitter(g).SplitWithDiagonals(touched)
		}
		if !d.reporter.IsRunning() {
			return g, nil
		}

		d.reporter.Log("relax", "post-fit relaxation")
		g.RelaxPass(grid.NumWorkers, optimizeVertexFunc(g, locus, relaxSteps, maxChange))
		if !d.reporter.IsRunning() {
			return g, nil
		}

		d.reporter.Log("divide", "octree-splitting every cell")
		split.NewSplitter(g).SplitAll()
		g.RelaxPass(grid.NumWorkers, optimizeVertexFunc(g, locus, relaxSteps, maxChange))
		if !d.reporter.IsRunning() {
			return g, nil
		}

		// Rebuild the locus: the splitter and relax pass changed vertex
		// count and position, and modelLocus caches neither beyond the
		// polyline set itself, but gradient closures captured by the
		// previous pass's vertices are gone with it regardless.
		locus = newModelLocus(g, d.models, p.SinSharpAngle())
	}

	return g, nil
}

// fitPass runs fit.Fit over every (model, polyline) pair whose bounding
// box intersects the grid's bounds, up to maxFitsPerPass successes, and
// returns the union of every touched cell (§4.6 stage 5).
func (d *Driver) fitPass(g *grid.Grid, locus *modelLocus) []int {
	bounds := d.params.Bounds()
	touched := make(map[int]bool)
	fits := 0

	for meshIdx, m := range d.models {
		if !bounds.Intersects(m.BoundingBox()) {
			continue
		}
		for polylineNumber, poly := range locus.Polylines(meshIdx) {
			if fits >= maxFitsPerPass {
				break
			}
			result := fit.Fit(g, poly, meshIdx, polylineNumber)
			if result.Steps == 0 {
				continue
			}
			fits++
			for _, id := range result.TouchedCells {
				touched[id] = true
			}
		}
		if fits >= maxFitsPerPass {
			break
		}
	}

	out := make([]int, 0, len(touched))
	for id := range touched {
		out = append(out, id)
	}
	return out
}

// calcDivideRounds is round(log2(maxEdge/minEdge)): the number of
// halvings needed to bring the lattice's initial edge length down to the
// target minimum (§4.6 stage 7).
func calcDivideRounds(maxEdge, minEdge float64) int {
	n := int(math.Round(math.Log2(maxEdge / minEdge)))
	if n < 0 {
		n = 0
	}
	return n
}
