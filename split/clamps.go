// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
)

// boundaryEdgeDir reports whether a and b, the clamps of a source edge's
// two endpoints, together mark it a boundary edge, and the axis to inherit
// as a Parallel clamp if so (rule 1).
func boundaryEdgeDir(a, b grid.Clamp) (geom.Vector3, bool) {
	aPar := a.Tag == grid.ClampParallel
	bPar := b.Tag == grid.ClampParallel
	aBoundary := aPar || a.Tag == grid.ClampFixed
	bBoundary := bPar || b.Tag == grid.ClampFixed
	if !aBoundary || !bBoundary {
		return geom.Vector3{}, false
	}
	switch {
	case aPar && bPar:
		if geom.SamePoint(a.Dir, b.Dir) {
			return a.Dir, true
		}
		return geom.Vector3{}, false
	case aPar:
		return a.Dir, true
	case bPar:
		return b.Dir, true
	default:
		return geom.Vector3{}, false
	}
}

// faceBoundaryEdges returns the indices (0..11) of the four edges bounding
// face fn.
func faceBoundaryEdges(fn grid.FaceNumber) []int {
	corners := grid.GetFaceCellPos(fn)
	set := map[grid.CellVertPos]bool{}
	for _, p := range corners {
		set[p] = true
	}
	var out []int
	for i := 0; i < 12; i++ {
		pair := grid.CellEdgeVerts(i)
		if set[pair[0]] && set[pair[1]] {
			out = append(out, i)
		}
	}
	return out
}

// matchAdjacentEdge looks for a live cell (other than skip) whose edge
// midpoint coincides with pt, the trigger for rule 3.
func (s *Splitter) matchAdjacentEdge(pt geom.Vector3, skip map[int]bool) (grid.Clamp, bool) {
	g := s.g
	for _, c := range g.Cells() {
		if skip[c.Id()] {
			continue
		}
		for i := 0; i < 12; i++ {
			pair := grid.CellEdgeVerts(i)
			av := c.VertIdx(pair[0])
			bv := c.VertIdx(pair[1])
			a := g.VertexAt(av).Pt()
			b := g.VertexAt(bv).Pt()
			mid := a.Add(b).Mul(0.5)
			if geom.SamePoint(pt, mid) {
				return grid.NewCellEdgeCenterClamp(av, bv), true
			}
		}
	}
	return grid.Clamp{}, false
}

// matchAdjacentFace looks for a live cell (other than skip) whose face
// centroid lies near pt, the trigger for rule 4. Exact tolerance matches
// win; otherwise the closest candidate within 0.25*shortest adjacent edge
// is accepted ("as clamped as it can be").
func (s *Splitter) matchAdjacentFace(pt geom.Vector3, skip map[int]bool) (grid.Clamp, bool) {
	g := s.g
	bestDist := -1.0
	var best grid.Clamp
	found := false
	for _, c := range g.Cells() {
		if skip[c.Id()] {
			continue
		}
		lens := c.CalcEdgeLengths(g)
		shortest := lens[0]
		for _, l := range lens[1:] {
			if l < shortest {
				shortest = l
			}
		}
		for fn := grid.Bottom; fn < grid.FnUnknown; fn++ {
			centroid := c.CalcFaceCentroid(g, fn)
			d := pt.Sub(centroid).Norm()
			if d < geom.SameDistTol {
				return grid.NewCellFaceCenterClamp(c.Id(), fn), true
			}
			if d <= 0.25*shortest && (!found || d < bestDist) {
				best, bestDist, found = grid.NewCellFaceCenterClamp(c.Id(), fn), d, true
			}
		}
	}
	return best, found
}

// skipSet returns the ids of rec's own newly created cells, excluded from
// the adjacent-cell scan so a vertex never "matches" its own owning cell.
func skipSet(rec *splitRecord) map[int]bool {
	m := make(map[int]bool, len(rec.newCells))
	for _, c := range rec.newCells {
		m[c.Id()] = true
	}
	return m
}

// applyClampRules runs the post-split clamp inheritance rules 1-4 from
// §4.4 over the vertices rec introduced.
func (s *Splitter) applyClampRules(rec *splitRecord) {
	g := s.g
	skip := skipSet(rec)

	if rec.kind == kindOctree {
		for i := 0; i < 12; i++ {
			pair := grid.CellEdgeVerts(i)
			va := g.VertexAt(rec.sourceVerts[pair[0]])
			vb := g.VertexAt(rec.sourceVerts[pair[1]])
			if dir, ok := boundaryEdgeDir(va.Clamp(), vb.Clamp()); ok {
				g.VertexAt(rec.edgeCenters[i]).SetClamp(grid.NewParallelClamp(dir))
			}
		}
		for fn := grid.Bottom; fn < grid.FnUnknown; fn++ {
			if !rec.perpFaceOK[fn] {
				continue
			}
			candidates := []int{rec.faceCenters[fn]}
			for _, i := range faceBoundaryEdges(fn) {
				candidates = append(candidates, rec.edgeCenters[i])
			}
			for _, vi := range candidates {
				g.VertexAt(vi).SetClamp(grid.NewPerpendicularClamp(rec.perpFaceDir[fn]))
			}
		}
	}

	for _, vi := range rec.newVertices() {
		pt := g.VertexAt(vi).Pt()
		if clamp, ok := s.matchAdjacentEdge(pt, skip); ok {
			g.VertexAt(vi).SetClamp(clamp)
			continue
		}
		if clamp, ok := s.matchAdjacentFace(pt, skip); ok {
			g.VertexAt(vi).SetClamp(clamp)
		}
	}

	s.applyPolylineReclamp(rec)
}

// applyPolylineReclamp implements rules 5 and 6: an octree edge midpoint,
// or a diagonal-split diagonal midpoint, whose source endpoints were
// edge-clamped to the same polyline is re-clamped onto that polyline.
func (s *Splitter) applyPolylineReclamp(rec *splitRecord) {
	g := s.g
	reclampIfSamePolyline := func(midVert int, aVert, bVert int) {
		a := g.VertexAt(aVert).Clamp()
		b := g.VertexAt(bVert).Clamp()
		if a.Tag != grid.ClampEdge || b.Tag != grid.ClampEdge {
			return
		}
		if a.Indices[0] != b.Indices[0] || a.Indices[1] != b.Indices[1] {
			return
		}
		idx := a.Indices[2]
		if b.Indices[2] < idx {
			idx = b.Indices[2]
		}
		g.VertexAt(midVert).SetClamp(grid.NewEdgeClamp(a.Indices[0], a.Indices[1], idx))
	}

	switch rec.kind {
	case kindOctree:
		for i := 0; i < 12; i++ {
			pair := grid.CellEdgeVerts(i)
			reclampIfSamePolyline(rec.edgeCenters[i], rec.sourceVerts[pair[0]], rec.sourceVerts[pair[1]])
		}
	case kindDiagonal:
		reclampIfSamePolyline(rec.diagMidNear, rec.sourceVerts[rec.diagCorner0], rec.sourceVerts[rec.diagCorner1])
	}
}

// fixBrokenLinks downgrades any CellEdgeCenter clamp whose referenced
// edge's cell no longer exists (the source cell of some split) back to
// None, then re-evaluates it against the grid-boundary rules by checking
// whether its two stored endpoint vertices still carry a boundary clamp.
func (s *Splitter) fixBrokenLinks() {
	g := s.g
	for _, v := range g.Vertices() {
		c := v.Clamp()
		if c.Tag != grid.ClampCellEdgeCenter {
			continue
		}
		a, b := c.Indices[0], c.Indices[1]
		if a >= g.NumVertices() || b >= g.NumVertices() {
			v.SetClamp(grid.NewNoneClamp())
			continue
		}
		live := false
		for _, cellIdx := range g.VertexAt(a).CellIndices() {
			if g.VertexAt(b).LinkedToCell(cellIdx) {
				live = true
				break
			}
		}
		if live {
			continue
		}
		if dir, ok := boundaryEdgeDir(g.VertexAt(a).Clamp(), g.VertexAt(b).Clamp()); ok {
			v.SetClamp(grid.NewParallelClamp(dir))
		} else {
			v.SetClamp(grid.NewNoneClamp())
		}
	}
}
