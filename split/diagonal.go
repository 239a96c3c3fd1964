// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
)

// axialDir gives, for each face, the edge direction that walks a corner on
// that face to its counterpart on the opposite face.
var axialDir = [6]grid.VertEdgeDir{
	grid.ZPos, // Bottom -> Top
	grid.ZNeg, // Top -> Bottom
	grid.YPos, // Front -> Back
	grid.YNeg, // Back -> Front
	grid.XPos, // Left -> Right
	grid.XNeg, // Right -> Left
}

// DetectDiagonalSplit looks for a face of cellID with exactly two
// edge/vert-clamped corners lying on a diagonal, the trigger for a
// triangular-prism split (§4.4). It reports the first face found.
func DetectDiagonalSplit(g *grid.Grid, cellID int) (fn grid.FaceNumber, corner0, corner1 grid.CellVertPos, ok bool) {
	c := g.CellByID(cellID)
	if c == nil {
		return 0, 0, 0, false
	}
	const diagMask = grid.ClampEdge | grid.ClampVert
	for f := grid.Bottom; f < grid.FnUnknown; f++ {
		corners := grid.GetFaceCellPos(f)
		var set [4]bool
		for i, pos := range corners {
			set[i] = g.VertexAt(c.VertIdx(pos)).Clamp().Matches(diagMask)
		}
		if set[0] && set[2] && !set[1] && !set[3] {
			return f, corners[0], corners[2], true
		}
		if set[1] && set[3] && !set[0] && !set[2] {
			return f, corners[1], corners[3], true
		}
	}
	return 0, 0, 0, false
}

// diagonalSplit cuts cellID's face fn (and its opposite face) along the
// diagonal through corner0 and corner1, dicing each of the two resulting
// triangular prisms into 3 cuboids by fanning from the triangle centroids
// (six cuboids total, §4.4).
func (s *Splitter) diagonalSplit(cellID int, fn grid.FaceNumber, corner0, corner1 grid.CellVertPos) *splitRecord {
	g := s.g
	c := g.CellByID(cellID)
	if c == nil {
		return nil
	}

	var sourceVerts [8]int
	for p := 0; p < 8; p++ {
		sourceVerts[p] = c.VertIdx(grid.CellVertPos(p))
	}

	near := grid.GetFaceCellPos(fn)
	i0 := 0
	for i, p := range near {
		if p == corner0 {
			i0 = i
		}
	}
	a := near[i0]
	b := near[(i0+1)%4]
	cc := near[(i0+2)%4]
	d := near[(i0+3)%4]
	if cc != corner1 {
		// corner1 fell on the other diagonal; re-derive from the actual pair.
		a, cc = corner0, corner1
	}

	dir := axialDir[fn]
	midCache := make(map[[2]int]int)
	rec := &splitRecord{kind: kindDiagonal, sourceVerts: sourceVerts, diagCorner0: corner0, diagCorner1: corner1}

	rec.diagMidNear = s.sharedMidpoint(midCache, c.VertIdx(a), c.VertIdx(cc))
	farA := grid.VertsEdgeEndPos(a, dir)
	farCc := grid.VertsEdgeEndPos(cc, dir)
	rec.diagMidFar = s.sharedMidpoint(midCache, c.VertIdx(farA), c.VertIdx(farCc))

	cells1, verts1 := s.diceTriangularPrism(c, [3]grid.CellVertPos{a, b, cc}, dir, midCache)
	cells2, verts2 := s.diceTriangularPrism(c, [3]grid.CellVertPos{a, cc, d}, dir, midCache)

	rec.newCells = append(cells1, cells2...)
	rec.newVertsDiag = append(append([]int{rec.diagMidNear, rec.diagMidFar}, verts1...), verts2...)

	g.RemoveCell(cellID)
	return rec
}

// sharedMidpoint returns the midpoint vertex of the grid edge between
// vertex indices i and j, creating it once and reusing it for any other
// caller that asks for the same (unordered) pair within this split.
func (s *Splitter) sharedMidpoint(cache map[[2]int]int, i, j int) int {
	key := [2]int{i, j}
	if i > j {
		key = [2]int{j, i}
	}
	if v, ok := cache[key]; ok {
		return v
	}
	pi := s.g.VertexAt(i).Pt()
	pj := s.g.VertexAt(j).Pt()
	idx := s.g.AddVertex(pi.Add(pj).Mul(0.5))
	cache[key] = idx
	return idx
}

// diceTriangularPrism splits the prism standing on triangle tri (three
// source corners on face fn) and its axial counterpart (via dir) into 3
// cuboids, fanned from the near and far triangle centroids. Edge midpoints
// shared with the other half of the diagonal split are taken from cache.
func (s *Splitter) diceTriangularPrism(c *grid.Cell, tri [3]grid.CellVertPos, dir grid.VertEdgeDir, cache map[[2]int]int) ([]*grid.Cell, []int) {
	g := s.g

	var vIdx, wIdx [3]int
	var pNear, pFar [3]geom.Vector3
	for k := 0; k < 3; k++ {
		vIdx[k] = c.VertIdx(tri[k])
		wPos := grid.VertsEdgeEndPos(tri[k], dir)
		wIdx[k] = c.VertIdx(wPos)
		pNear[k] = g.VertexAt(vIdx[k]).Pt()
		pFar[k] = g.VertexAt(wIdx[k]).Pt()
	}

	cNear := g.AddVertex(pNear[0].Add(pNear[1]).Add(pNear[2]).Mul(1.0 / 3.0))
	cFar := g.AddVertex(pFar[0].Add(pFar[1]).Add(pFar[2]).Mul(1.0 / 3.0))

	var eNear, eFar [3]int
	for k := 0; k < 3; k++ {
		eNear[k] = s.sharedMidpoint(cache, vIdx[k], vIdx[(k+1)%3])
		eFar[k] = s.sharedMidpoint(cache, wIdx[k], wIdx[(k+1)%3])
	}

	newVerts := []int{cNear, cFar, eNear[0], eNear[1], eNear[2], eFar[0], eFar[1], eFar[2]}

	cells := make([]*grid.Cell, 0, 3)
	for k := 0; k < 3; k++ {
		prev := (k + 2) % 3
		var verts [8]int
		verts[grid.VertPosOf(0, 0, 0)] = vIdx[k]
		verts[grid.VertPosOf(1, 0, 0)] = eNear[prev]
		verts[grid.VertPosOf(0, 1, 0)] = eNear[k]
		verts[grid.VertPosOf(1, 1, 0)] = cNear
		verts[grid.VertPosOf(0, 0, 1)] = wIdx[k]
		verts[grid.VertPosOf(1, 0, 1)] = eFar[prev]
		verts[grid.VertPosOf(0, 1, 1)] = eFar[k]
		verts[grid.VertPosOf(1, 1, 1)] = cFar
		cells = append(cells, g.AddCell(verts))
	}
	return cells, newVerts
}
