// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/hexmesh/geom"
)

// Cell is a hexahedral grid cell: a stable id, eight corner vertex indices
// in CellVertPos order, and twelve rest edge lengths used by the
// compression energy term (C4).
type Cell struct {
	id          int
	vertIndices [8]int
	restEdgeLen [12]float64
}

// NewCell returns a cell with the given stable id and corner vertex
// indices (in CellVertPos order).
func NewCell(id int, verts [8]int) *Cell {
	return &Cell{id: id, vertIndices: verts}
}

// Id returns the cell's stable identifier, unaffected by compaction of the
// grid's cell storage array.
func (c *Cell) Id() int { return c.id }

// VertIdx returns the grid vertex index at corner pos.
func (c *Cell) VertIdx(pos CellVertPos) int { return c.vertIndices[pos] }

// SetVertIdx rewires corner pos to grid vertex index vertIdx.
func (c *Cell) SetVertIdx(pos CellVertPos, vertIdx int) { c.vertIndices[pos] = vertIdx }

// VertsPos returns the corner at which vertIdx appears in c, or
// CvpUnknown if c does not reference it.
func (c *Cell) VertsPos(vertIdx int) CellVertPos {
	for pos, vi := range c.vertIndices {
		if vi == vertIdx {
			return CellVertPos(pos)
		}
	}
	return CvpUnknown
}

// RestEdgeLength returns the unstretched length of edge i (0..11, §4.2).
func (c *Cell) RestEdgeLength(i int) float64 { return c.restEdgeLen[i] }

// SetRestEdgeLength sets the unstretched length of edge i.
func (c *Cell) SetRestEdgeLength(i int, v float64) { c.restEdgeLen[i] = v }

// SetDefaultRestEdgeLengths sets every edge's rest length to its current
// length in grid g, the state a freshly split or freshly seeded cell
// starts from.
func (c *Cell) SetDefaultRestEdgeLengths(g *Grid) {
	for i := 0; i < 12; i++ {
		pair := cellEdgeVerts[i]
		a := g.VertexAt(c.vertIndices[pair[0]]).Pt()
		b := g.VertexAt(c.vertIndices[pair[1]]).Pt()
		c.restEdgeLen[i] = a.Sub(b).Norm()
	}
}

// VertPosOf packs a 0/1 octree-sub-cell coordinate into its CellVertPos,
// following the (z<<2 | y<<1 | x) bit layout of the original LwrFntLft..
// UprBckRgt ordering.
func VertPosOf(x, y, z int) CellVertPos {
	return CellVertPos(z<<2 | y<<1 | x)
}

// GetOppCorner returns the corner diagonally opposite pos.
func GetOppCorner(pos CellVertPos) CellVertPos { return oppositeCornerLUT[pos] }

// GetOppFace returns the face opposite fn.
func GetOppFace(fn FaceNumber) FaceNumber { return oppositeFaceLUT[fn] }

// GetAdjacentEdgeEnds returns the three corners reachable from pos along a
// single cell edge.
func GetAdjacentEdgeEnds(pos CellVertPos) [3]CellVertPos {
	var out [3]CellVertPos
	n := 0
	for dir := 0; dir < 6 && n < 3; dir++ {
		if other := cornerEdgeLUT[pos][dir]; other != CvpUnknown {
			out[n] = other
			n++
		}
	}
	return out
}

// GetVertFaces returns the three faces meeting at corner pos.
func GetVertFaces(pos CellVertPos) [3]FaceNumber { return cornerFacesLUT[pos] }

// GetFaceCellPos returns the four corners bounding face fn, in winding
// order.
func GetFaceCellPos(fn FaceNumber) [4]CellVertPos { return faceCornerLUT[fn] }

// GetTriCellPos returns the two triangles (as corner triples) that
// GetFaceTriIndices splits face fn into.
func GetTriCellPos(fn FaceNumber) [2][3]CellVertPos {
	corners := faceCornerLUT[fn]
	return [2][3]CellVertPos{
		{corners[0], corners[1], corners[2]},
		{corners[0], corners[2], corners[3]},
	}
}

// VertsEdgeEndPos returns the corner reached from pos following edge
// direction dir, or CvpUnknown if pos has no edge in that direction.
func VertsEdgeEndPos(pos CellVertPos, dir VertEdgeDir) CellVertPos {
	return cornerEdgeLUT[pos][dir]
}

// GetFaceIndices returns the vertex indices of face fn's four corners.
func (c *Cell) GetFaceIndices(fn FaceNumber) [4]int {
	corners := faceCornerLUT[fn]
	var out [4]int
	for i, pos := range corners {
		out[i] = c.vertIndices[pos]
	}
	return out
}

// GetFaceTriIndices returns the vertex indices of the two triangles face
// fn is split into for intersection tests and OBJ export.
func (c *Cell) GetFaceTriIndices(fn FaceNumber) [2][3]int {
	tris := GetTriCellPos(fn)
	var out [2][3]int
	for t := 0; t < 2; t++ {
		for i := 0; i < 3; i++ {
			out[t][i] = c.vertIndices[tris[t][i]]
		}
	}
	return out
}

// GetFacePoints returns the four corner positions of face fn in grid g.
func (c *Cell) GetFacePoints(g *Grid, fn FaceNumber) [4]geom.Vector3 {
	idx := c.GetFaceIndices(fn)
	var out [4]geom.Vector3
	for i, vi := range idx {
		out[i] = g.VertexAt(vi).Pt()
	}
	return out
}

// IsPerpendicularBoundaryFace reports whether face fn of c lies on the
// outer boundary and is aligned with a principal axis closely enough
// (within the §4.4 0.7071 ~cos45° threshold) to warrant a Perpendicular
// clamp on its corners, returning that clamp when it does.
func (c *Cell) IsPerpendicularBoundaryFace(g *Grid, fn FaceNumber) (Clamp, bool) {
	const axisAlignThreshold = 0.7071
	pts := c.GetFacePoints(g, fn)
	n := geom.TriangleNormal(pts[0], pts[1], pts[2]).Normalize()
	axis, sign := geom.NearestAxis(n)
	var axisVec geom.Vector3
	switch axis {
	case 0:
		axisVec = geom.VX
	case 1:
		axisVec = geom.VY
	default:
		axisVec = geom.VZ
	}
	if n.Dot(axisVec) < 0 {
		sign = -sign
	}
	aligned := n.Dot(axisVec) >= axisAlignThreshold || n.Dot(axisVec) <= -axisAlignThreshold
	if !aligned {
		return Clamp{}, false
	}
	return NewPerpendicularClamp(axisVec.Mul(sign)), true
}

// CalcBBox returns the bounding box of c's eight corners in grid g.
func (c *Cell) CalcBBox(g *Grid) geom.BoundingBox {
	bb := geom.NewBoundingBox(g.VertexAt(c.vertIndices[0]).Pt())
	for i := 1; i < 8; i++ {
		bb.Grow(g.VertexAt(c.vertIndices[i]).Pt())
	}
	return bb
}

// CalcEdgeLengths returns the current (stretched) length of each of c's 12
// edges.
func (c *Cell) CalcEdgeLengths(g *Grid) [12]float64 {
	var out [12]float64
	for i := 0; i < 12; i++ {
		pair := cellEdgeVerts[i]
		a := g.VertexAt(c.vertIndices[pair[0]]).Pt()
		b := g.VertexAt(c.vertIndices[pair[1]]).Pt()
		out[i] = a.Sub(b).Norm()
	}
	return out
}

// CalcVolume returns c's volume, computed by decomposing the hex into six
// tetrahedra fanned from corner 0.
func (c *Cell) CalcVolume(g *Grid) float64 {
	p := make([]geom.Vector3, 8)
	for i := 0; i < 8; i++ {
		p[i] = g.VertexAt(c.vertIndices[i]).Pt()
	}
	tets := [][4]int{
		{0, 1, 3, 7}, {0, 3, 2, 7}, {0, 2, 6, 7},
		{0, 6, 4, 7}, {0, 4, 5, 7}, {0, 5, 1, 7},
	}
	var vol float64
	for _, t := range tets {
		a := p[t[1]].Sub(p[t[0]])
		b := p[t[2]].Sub(p[t[0]])
		cc := p[t[3]].Sub(p[t[0]])
		vol += a.Cross(b).Dot(cc) / 6.0
	}
	return vol
}

// GetNumClamped returns the number of c's corners whose clamp tag is set
// in mask.
func (c *Cell) GetNumClamped(g *Grid, mask ClampType) int {
	n := 0
	for _, vi := range c.vertIndices {
		if g.VertexAt(vi).Clamp().Matches(mask) {
			n++
		}
	}
	return n
}

// CalcCentroid returns the average of c's eight corner positions.
func (c *Cell) CalcCentroid(g *Grid) geom.Vector3 {
	var sum geom.Vector3
	for _, vi := range c.vertIndices {
		sum = sum.Add(g.VertexAt(vi).Pt())
	}
	return sum.Mul(1.0 / 8.0)
}

// CalcFaceCentroid returns the average of face fn's four corner positions.
func (c *Cell) CalcFaceCentroid(g *Grid, fn FaceNumber) geom.Vector3 {
	pts := c.GetFacePoints(g, fn)
	return pts[0].Add(pts[1]).Add(pts[2]).Add(pts[3]).Mul(0.25)
}
