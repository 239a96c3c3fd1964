// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/spatial"
)

// Grid is the hexahedral mesh under construction (C3). Vertices are
// append-only and referenced by stable index; cells are stored compactly
// (no holes) and referenced by a stable id that survives compaction, with
// cellIndexOf mapping id to current storage slot the way gofem's
// fem.Domain maps Dof2Tnum and Vid2node/Cid2elem resolve logical ids to
// storage positions.
type Grid struct {
	verts []*Vertex
	index *spatial.Index

	cells       []*Cell
	cellIndexOf map[int]int
	nextCellID  int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{
		index:       spatial.NewIndex(),
		cellIndexOf: make(map[int]int),
	}
}

// AddVertex appends a new vertex at pt and returns its stable index.
func (g *Grid) AddVertex(pt geom.Vector3) int {
	idx := len(g.verts)
	v := NewVertex(idx, pt)
	g.verts = append(g.verts, v)
	g.index.Insert(idx, pt)
	return idx
}

// VertexAt returns the vertex at stable index idx.
func (g *Grid) VertexAt(idx int) *Vertex { return g.verts[idx] }

// NumVertices returns the number of vertices (G3, together with
// g.index.Size()).
func (g *Grid) NumVertices() int { return len(g.verts) }

// Vertices returns every vertex, in index order.
func (g *Grid) Vertices() []*Vertex { return g.verts }

// SpatialIndex exposes the vertex spatial index for box and radius queries
// (C1); the pipeline's cusp snapping queries it, and MoveVertex uses it for
// fuse detection.
func (g *Grid) SpatialIndex() *spatial.Index { return g.index }

// MoveVertex relocates vertex idx to newPos, keeping the spatial index in
// sync, and reports false (leaving everything unchanged) if that would
// fuse it with a distinct vertex (§7 geometric degeneracy).
func (g *Grid) MoveVertex(idx int, newPos geom.Vector3) bool {
	if !g.index.Move(idx, newPos) {
		return false
	}
	g.verts[idx].SetPt(newPos)
	return true
}

// AddCell appends a new cell referencing the given corner vertex indices,
// assigns it a fresh stable id, registers the vertex/cell backlinks (V4),
// and sets its rest edge lengths to its current (as-built) edge lengths.
func (g *Grid) AddCell(verts [8]int) *Cell {
	id := g.nextCellID
	g.nextCellID++
	c := NewCell(id, verts)
	g.cellIndexOf[id] = len(g.cells)
	g.cells = append(g.cells, c)
	for _, vi := range verts {
		g.verts[vi].AddCellIndex(id)
	}
	c.SetDefaultRestEdgeLengths(g)
	return c
}

// CellByID returns the cell with stable id cellID, or nil if it has been
// removed.
func (g *Grid) CellByID(cellID int) *Cell {
	i, ok := g.cellIndexOf[cellID]
	if !ok {
		return nil
	}
	return g.cells[i]
}

// CellAt returns the cell at raw storage slot i (0..NumCells()-1); used
// only for iteration, never to persist a reference across mutation.
func (g *Grid) CellAt(i int) *Cell { return g.cells[i] }

// NumCells returns the number of live cells.
func (g *Grid) NumCells() int { return len(g.cells) }

// Cells returns every live cell, in storage order (not stable across
// RemoveCell).
func (g *Grid) Cells() []*Cell { return g.cells }

// RemoveCell drops the cell with stable id cellID, unlinking it from its
// corner vertices and compacting storage by swapping the last cell into
// the vacated slot (the swap-with-back pattern gofem's fem.Domain uses to
// keep Cid2elem dense).
func (g *Grid) RemoveCell(cellID int) {
	i, ok := g.cellIndexOf[cellID]
	if !ok {
		return
	}
	c := g.cells[i]
	for _, vi := range c.vertIndices {
		g.verts[vi].RemoveCellIndex(cellID)
	}
	last := len(g.cells) - 1
	g.cells[i] = g.cells[last]
	g.cells = g.cells[:last]
	if i != last {
		g.cellIndexOf[g.cells[i].id] = i
	}
	delete(g.cellIndexOf, cellID)
}

// Verify checks the grid's structural invariants and returns the first
// violation found: index size against vertex count, vertex self-indices,
// finite positions, vertex/cell backlinks, distinct in-range cell corners,
// signed cell volume above SameDistTol³ and positive rest edge lengths.
// Clamp predicates, spatial-index keys and corner-lattice adjacency are
// not checked.
// It is the Go analogue of gofem's GridCell/GridVert verify() methods,
// folded into one entry point the way fem.Domain checks its own
// consistency after assembly.
func (g *Grid) Verify() error {
	if g.index.Size() != len(g.verts) {
		return chk.Err("grid: spatial index size %d does not match vertex count %d (G3)", g.index.Size(), len(g.verts))
	}
	for idx, v := range g.verts {
		if v.Index() != idx {
			return chk.Err("grid: vertex at slot %d reports index %d (V-index)", idx, v.Index())
		}
		if !geom.IsFinite(v.Pt()) {
			return chk.Err("grid: vertex %d has non-finite position (V1)", idx)
		}
		seen := make(map[int]bool, len(v.CellIndices()))
		for _, cid := range v.CellIndices() {
			if seen[cid] {
				return chk.Err("grid: vertex %d lists cell %d more than once (V4)", idx, cid)
			}
			seen[cid] = true
			if g.CellByID(cid) == nil {
				return chk.Err("grid: vertex %d references missing cell %d", idx, cid)
			}
		}
	}
	for _, c := range g.cells {
		seenVert := make(map[int]bool, 8)
		for _, vi := range c.vertIndices {
			if vi < 0 || vi >= len(g.verts) {
				return chk.Err("grid: cell %d references out-of-range vertex %d", c.id, vi)
			}
			if seenVert[vi] {
				return chk.Err("grid: cell %d references vertex %d more than once (C1)", c.id, vi)
			}
			seenVert[vi] = true
			if !g.verts[vi].LinkedToCell(c.id) {
				return chk.Err("grid: cell %d not backlinked from vertex %d (C2)", c.id, vi)
			}
		}
		vol := c.CalcVolume(g)
		if vol <= geom.SameDistTol*geom.SameDistTol*geom.SameDistTol {
			return chk.Err("grid: cell %d has non-positive or degenerate volume %v (C3)", c.id, vol)
		}
		for i := 0; i < 12; i++ {
			if c.restEdgeLen[i] <= 0 {
				return chk.Err("grid: cell %d edge %d has non-positive rest length (C4)", c.id, i)
			}
		}
	}
	return nil
}

// String renders a short human-readable summary, following gofem's
// terse Stringer conventions for mesh-like types.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid{verts=%d cells=%d}", len(g.verts), len(g.cells))
}
