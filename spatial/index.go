// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial implements the box-keyed spatial tree over vertex
// indices used by the grid (C1), backed by an R-tree so that point queries
// (fuse detection on move), Manhattan-radius queries (cusp snapping) and
// bounding-box queries over vertex positions are O(log n).
package spatial

import (
	"github.com/cpmech/hexmesh/geom"
	"github.com/dhconnelly/rtreego"
)

// epsilon gives point entries a tiny, non-zero extent: rtreego rejects
// degenerate (zero-volume) rectangles.
const epsilon = 1e-9

var tolVec = geom.Vector3{X: geom.SameDistTol, Y: geom.SameDistTol, Z: geom.SameDistTol}

type entry struct {
	id  int
	pos geom.Vector3
}

func (e *entry) Bounds() rtreego.Rect {
	p := rtreego.Point{e.pos.X - epsilon, e.pos.Y - epsilon, e.pos.Z - epsilon}
	r, err := rtreego.NewRect(p, []float64{2 * epsilon, 2 * epsilon, 2 * epsilon})
	if err != nil {
		panic(err)
	}
	return r
}

// Index is the box-keyed spatial tree over vertex indices (C1). It is
// mutated only by single-threaded stages (§5): add, remove, move.
type Index struct {
	tree    *rtreego.Rtree
	entries map[int]*entry
}

// NewIndex returns an empty spatial index.
func NewIndex() *Index {
	return &Index{
		tree:    rtreego.NewTree(3, 25, 50),
		entries: make(map[int]*entry),
	}
}

// Size returns the number of indexed ids (G3).
func (ix *Index) Size() int {
	return len(ix.entries)
}

// Insert adds id at pos. Re-inserting an existing id first removes it.
func (ix *Index) Insert(id int, pos geom.Vector3) {
	if _, ok := ix.entries[id]; ok {
		ix.Remove(id)
	}
	e := &entry{id: id, pos: pos}
	ix.entries[id] = e
	ix.tree.Insert(e)
}

// Remove drops id from the index; a no-op if it isn't present.
func (ix *Index) Remove(id int) {
	e, ok := ix.entries[id]
	if !ok {
		return
	}
	ix.tree.Delete(e)
	delete(ix.entries, id)
}

// Move relocates id to newPos. It refuses the move (returning false,
// leaving the index untouched) when newPos would fuse id with a
// different id already present within geom.SameDistTol — the geometric
// degeneracy error of §7, reported but non-fatal to the caller.
func (ix *Index) Move(id int, newPos geom.Vector3) bool {
	for _, other := range ix.QueryPoint(newPos) {
		if other != id {
			return false
		}
	}
	ix.Remove(id)
	ix.Insert(id, newPos)
	return true
}

func toRect(bb geom.BoundingBox) rtreego.Rect {
	lengths := []float64{
		max(bb.Max.X-bb.Min.X, epsilon),
		max(bb.Max.Y-bb.Min.Y, epsilon),
		max(bb.Max.Z-bb.Min.Z, epsilon),
	}
	r, err := rtreego.NewRect(rtreego.Point{bb.Min.X, bb.Min.Y, bb.Min.Z}, lengths)
	if err != nil {
		panic(err)
	}
	return r
}

// Query returns every id whose point lies within bb.
func (ix *Index) Query(bb geom.BoundingBox) []int {
	hits := ix.tree.SearchIntersect(toRect(bb))
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*entry).id)
	}
	return ids
}

// QueryPoint returns every id within geom.SameDistTol of pt.
func (ix *Index) QueryPoint(pt geom.Vector3) []int {
	bb := geom.BoundingBox{Min: pt.Sub(tolVec), Max: pt.Add(tolVec)}
	var ids []int
	for _, id := range ix.Query(bb) {
		if geom.SamePoint(ix.entries[id].pos, pt) {
			ids = append(ids, id)
		}
	}
	return ids
}

// QueryManhattan returns every id within the given Manhattan-norm radius of
// pt — used by cusp snapping (§4.6 step 3), which measures distance with
// the L1 norm rather than Euclidean.
func (ix *Index) QueryManhattan(pt geom.Vector3, radius float64) []int {
	m := geom.Vector3{X: radius, Y: radius, Z: radius}
	bb := geom.BoundingBox{Min: pt.Sub(m), Max: pt.Add(m)}
	var ids []int
	for _, id := range ix.Query(bb) {
		p := ix.entries[id].pos
		d := abs(p.X-pt.X) + abs(p.Y-pt.Y) + abs(p.Z-pt.Z)
		if d <= radius {
			ids = append(ids, id)
		}
	}
	return ids
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
