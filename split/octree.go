// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import "github.com/cpmech/hexmesh/grid"

type locusKind int

const (
	lCorner locusKind = iota
	lEdge
	lFace
	lCenter
)

// locus names where, in the source cell, a sub-cell's corner comes from:
// a source corner verbatim, the midpoint of a source edge, the centroid of
// a source face, or the source cell's body centroid.
type locus struct {
	kind     locusKind
	a, b     grid.CellVertPos
	face     grid.FaceNumber
}

func corn(p grid.CellVertPos) locus             { return locus{kind: lCorner, a: p} }
func edge(a, b grid.CellVertPos) locus          { return locus{kind: lEdge, a: a, b: b} }
func face(f grid.FaceNumber) locus              { return locus{kind: lFace, face: f} }
func center() locus                             { return locus{kind: lCenter} }

// octreeSubCellLUT gives, for each of the 8 sub-cells (indexed by the
// source corner it owns, addSubCellLwrFntLft..addSubCellUprBckRgt), the
// locus of each of its own 8 corners (in CellVertPos order). Transcribed
// from the splitter's per-sub-cell corner wiring.
var octreeSubCellLUT = [8][8]locus{
	// LwrFntLft
	{
		corn(grid.LwrFntLft),
		edge(grid.LwrFntLft, grid.LwrFntRgt),
		edge(grid.LwrFntLft, grid.LwrBckLft),
		face(grid.Bottom),
		edge(grid.LwrFntLft, grid.UprFntLft),
		face(grid.Front),
		face(grid.Left),
		center(),
	},
	// LwrFntRgt
	{
		edge(grid.LwrFntLft, grid.LwrFntRgt),
		corn(grid.LwrFntRgt),
		face(grid.Bottom),
		edge(grid.LwrFntRgt, grid.LwrBckRgt),
		face(grid.Front),
		edge(grid.LwrFntRgt, grid.UprFntRgt),
		center(),
		face(grid.Right),
	},
	// LwrBckLft
	{
		edge(grid.LwrFntLft, grid.LwrBckLft),
		face(grid.Bottom),
		corn(grid.LwrBckLft),
		edge(grid.LwrBckLft, grid.LwrBckRgt),
		face(grid.Left),
		center(),
		edge(grid.LwrBckLft, grid.UprBckLft),
		face(grid.Back),
	},
	// LwrBckRgt
	{
		face(grid.Bottom),
		edge(grid.LwrFntRgt, grid.LwrBckRgt),
		edge(grid.LwrBckLft, grid.LwrBckRgt),
		corn(grid.LwrBckRgt),
		center(),
		face(grid.Right),
		face(grid.Back),
		edge(grid.LwrBckRgt, grid.UprBckRgt),
	},
	// UprFntLft
	{
		edge(grid.LwrFntLft, grid.UprFntLft),
		face(grid.Front),
		face(grid.Left),
		center(),
		corn(grid.UprFntLft),
		edge(grid.UprFntLft, grid.UprFntRgt),
		edge(grid.UprFntLft, grid.UprBckLft),
		face(grid.Top),
	},
	// UprFntRgt
	{
		face(grid.Front),
		edge(grid.LwrFntRgt, grid.UprFntRgt),
		center(),
		face(grid.Right),
		edge(grid.UprFntLft, grid.UprFntRgt),
		corn(grid.UprFntRgt),
		face(grid.Top),
		edge(grid.UprFntRgt, grid.UprBckRgt),
	},
	// UprBckLft
	{
		face(grid.Left),
		center(),
		edge(grid.LwrBckLft, grid.UprBckLft),
		face(grid.Back),
		edge(grid.UprFntLft, grid.UprBckLft),
		face(grid.Top),
		corn(grid.UprBckLft),
		edge(grid.UprBckLft, grid.UprBckRgt),
	},
	// UprBckRgt
	{
		center(),
		face(grid.Right),
		face(grid.Back),
		edge(grid.LwrBckRgt, grid.UprBckRgt),
		face(grid.Top),
		edge(grid.UprFntRgt, grid.UprBckRgt),
		edge(grid.UprBckLft, grid.UprBckRgt),
		corn(grid.UprBckRgt),
	},
}

func resolveLocus(loc locus, sourceVerts [8]int, edgeCenters [12]int, faceCenters [6]int, centerVert int) int {
	switch loc.kind {
	case lCorner:
		return sourceVerts[loc.a]
	case lEdge:
		return edgeCenters[grid.EdgeIndexOf(loc.a, loc.b)]
	case lFace:
		return faceCenters[loc.face]
	default:
		return centerVert
	}
}

// octreeSplit replaces the cell with id cellID by the 8 sub-cells of
// octreeSubCellLUT, adding a body centre, 6 face centres and 12 edge
// centres as new grid vertices, and halving every sub-cell's rest edge
// lengths from the source (§4.4).
func (s *Splitter) octreeSplit(cellID int) *splitRecord {
	g := s.g
	c := g.CellByID(cellID)
	if c == nil {
		return nil
	}

	var sourceVerts [8]int
	for p := 0; p < 8; p++ {
		sourceVerts[p] = c.VertIdx(grid.CellVertPos(p))
	}

	rec := &splitRecord{kind: kindOctree, sourceVerts: sourceVerts}

	for fn := grid.Bottom; fn < grid.FnUnknown; fn++ {
		if clamp, ok := c.IsPerpendicularBoundaryFace(g, fn); ok {
			rec.perpFaceOK[fn] = true
			rec.perpFaceDir[fn] = clamp.Dir
		}
	}

	rec.center = g.AddVertex(c.CalcCentroid(g))

	for i := 0; i < 12; i++ {
		pair := grid.CellEdgeVerts(i)
		a := g.VertexAt(sourceVerts[pair[0]]).Pt()
		b := g.VertexAt(sourceVerts[pair[1]]).Pt()
		rec.edgeCenters[i] = g.AddVertex(a.Add(b).Mul(0.5))
	}

	for fn := grid.Bottom; fn < grid.FnUnknown; fn++ {
		rec.faceCenters[fn] = g.AddVertex(c.CalcFaceCentroid(g, fn))
	}

	var restLen [12]float64
	for i := 0; i < 12; i++ {
		restLen[i] = c.RestEdgeLength(i) / 2
	}

	rec.newCells = make([]*grid.Cell, 0, 8)
	for sub := 0; sub < 8; sub++ {
		var verts [8]int
		for corner := 0; corner < 8; corner++ {
			verts[corner] = resolveLocus(octreeSubCellLUT[sub][corner], sourceVerts, rec.edgeCenters, rec.faceCenters, rec.center)
		}
		nc := g.AddCell(verts)
		for i := 0; i < 12; i++ {
			nc.SetRestEdgeLength(i, restLen[i])
		}
		rec.newCells = append(rec.newCells, nc)
	}

	g.RemoveCell(cellID)
	return rec
}
