// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit implements the polyline fitter (C8, §4.5): walking a grid
// corner along a surface-model polyline by repeatedly finding where the
// polyline pierces a face of a cell incident to the current corner, then
// snapping the least bend-energy-disruptive neighbouring corner onto that
// hit.
package fit

import (
	"math"

	"github.com/cpmech/hexmesh/energy"
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/surface"
)

// alreadyFit is the set of clamp tags that mark a corner as already
// walked onto a polyline or vertex and therefore off-limits as a further
// fitting target.
const alreadyFit = grid.ClampEdge | grid.ClampVert | grid.ClampFixed

// Result reports the outcome of fitting one polyline.
type Result struct {
	// TouchedCells are the cells whose faces were pierced during the
	// walk; the driver hands these to the splitter (C7) afterward.
	TouchedCells []int
	// Steps is the number of corners moved onto the polyline.
	Steps int
}

type candidate struct {
	cornerVert int
	hitPt      geom.Vector3
	segIdx     int
	cellID     int
	preferred  bool
	bendEnergy float64
}

// Fit walks a grid corner along poly, starting from the vertex nearest
// its first endpoint, moving and edge-clamping one corner per step until
// no further face hit is found.
func Fit(g *grid.Grid, poly surface.Polyline, meshIdx, polylineNumber int) Result {
	start, end := poly.Endpoints()
	current := nearestVertex(g, start)

	touched := make(map[int]bool)
	steps := 0

	for {
		cands := collectCandidates(g, poly, current, meshIdx, polylineNumber)
		if len(cands) == 0 {
			break
		}
		best := pickBest(cands)
		touched[best.cellID] = true

		v := g.VertexAt(best.cornerVert)
		target := projectOntoConstraint(v, best.hitPt)
		if !g.MoveVertex(best.cornerVert, target) {
			break
		}
		v.SetClamp(grid.NewEdgeClamp(meshIdx, polylineNumber, best.segIdx))
		steps++

		if !v.Clamp().Matches(grid.ClampEdge | grid.ClampVert) {
			break
		}
		current = best.cornerVert
	}

	endVert := nearestVertex(g, end)
	if !g.VertexAt(endVert).Clamp().Matches(alreadyFit) {
		g.VertexAt(endVert).SetClamp(grid.NewEdgeClamp(meshIdx, polylineNumber, poly.NumSegments()-1))
	}

	cells := make([]int, 0, len(touched))
	for id := range touched {
		cells = append(cells, id)
	}
	return Result{TouchedCells: cells, Steps: steps}
}

func nearestVertex(g *grid.Grid, pt geom.Vector3) int {
	best, bestD := -1, 0.0
	for _, v := range g.Vertices() {
		d := v.Pt().Sub(pt).Norm2()
		if best < 0 || d < bestD {
			best, bestD = v.Index(), d
		}
	}
	return best
}

// collectCandidates gathers, over every under-constrained cell incident
// to current, every (eligible corner, polyline hit) pair: the cell's face
// must be pierced by some polyline segment (every segment is tested, from
// the first), and the corner must
// be neither current, nor current's diametrically opposite corner, nor
// already fit (§4.5 step 1-2).
func collectCandidates(g *grid.Grid, poly surface.Polyline, current, meshIdx, polylineNumber int) []candidate {
	var out []candidate
	curPt := g.VertexAt(current).Pt()

	for _, cellID := range g.VertexAt(current).CellIndices() {
		cell := g.CellByID(cellID)
		if cell.GetNumClamped(g, alreadyFit) >= 2 {
			continue
		}
		pos := cell.VertsPos(current)
		if pos == grid.CvpUnknown {
			continue
		}
		opp := grid.GetOppCorner(pos)
		adjacent := grid.GetAdjacentEdgeEnds(pos)
		isAdjacent := func(p grid.CellVertPos) bool {
			for _, a := range adjacent {
				if a == p {
					return true
				}
			}
			return false
		}

		for fn := grid.Bottom; fn < grid.FnUnknown; fn++ {
			tris := cell.GetFaceTriIndices(fn)
			for _, tri := range tris {
				p0 := g.VertexAt(tri[0]).Pt()
				p1 := g.VertexAt(tri[1]).Pt()
				p2 := g.VertexAt(tri[2]).Pt()
				for segIdx := 0; segIdx < poly.NumSegments(); segIdx++ {
					hit, ok := poly.Segment(segIdx).IntersectTriangle(p0, p1, p2)
					if !ok {
						continue
					}
					if geom.SamePoint(hit.Point, curPt) {
						continue
					}
					for cp := grid.CellVertPos(0); cp < grid.CvpUnknown; cp++ {
						if cp == pos || cp == opp {
							continue
						}
						vi := cell.VertIdx(cp)
						if g.VertexAt(vi).Clamp().Matches(alreadyFit) {
							continue
						}
						be := trialBendEnergy(g, vi, hit.Point)
						out = append(out, candidate{
							cornerVert: vi,
							hitPt:      hit.Point,
							segIdx:     segIdx,
							cellID:     cellID,
							preferred:  isAdjacent(cp),
							bendEnergy: be,
						})
					}
				}
			}
		}
	}
	return out
}

func pickBest(cands []candidate) candidate {
	best := cands[0]
	haveAnyPreferred := false
	for _, c := range cands {
		if c.preferred {
			haveAnyPreferred = true
			break
		}
	}
	first := true
	for _, c := range cands {
		if haveAnyPreferred && !c.preferred {
			continue
		}
		if first || c.bendEnergy < best.bendEnergy {
			best, first = c, false
		}
	}
	return best
}

// trialBendEnergy evaluates the bend energy of every cell incident to
// cornerVert as if cornerVert were moved to hitPt, without mutating the
// grid (§4.5 step 2). A candidate move bad enough to trip energy's
// numerical guard is simply the worst possible candidate, not a fatal
// error, so it is caught and scored as +Inf rather than propagated.
func trialBendEnergy(g *grid.Grid, cornerVert int, hitPt geom.Vector3) (total float64) {
	defer func() {
		if recover() != nil {
			total = math.Inf(1)
		}
	}()
	pos := func(vi int) geom.Vector3 {
		if vi == cornerVert {
			return hitPt
		}
		return g.VertexAt(vi).Pt()
	}
	for _, cid := range g.VertexAt(cornerVert).CellIndices() {
		total += energy.BendEnergy(g.CellByID(cid), pos)
	}
	return total
}

// projectOntoConstraint applies v's existing clamp to a candidate hit
// point before it becomes v's new position: Perpendicular restricts it to
// the line through v's current position, Parallel to the plane through
// v's current position (§4.5 step 2).
func projectOntoConstraint(v *grid.Vertex, hitPt geom.Vector3) geom.Vector3 {
	c := v.Clamp()
	p0 := v.Pt()
	switch c.Tag {
	case grid.ClampPerpendicular:
		t := hitPt.Sub(p0).Dot(c.Dir)
		return p0.Add(c.Dir.Mul(t))
	case grid.ClampParallel:
		t := hitPt.Sub(p0).Dot(c.Dir)
		return hitPt.Sub(c.Dir.Mul(t))
	default:
		return hitPt
	}
}
