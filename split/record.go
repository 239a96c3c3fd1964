// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split implements the two cell-splitting operations of C7: the
// octree 1-to-8 split and the diagonal 1-to-2 (six-cuboid) prism split,
// together with the post-split clamp inheritance that lets the rest of the
// mesh see the new vertices as already as-constrained as the geometry
// allows (§4.4).
package split

import (
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
)

type splitKind int

const (
	kindOctree splitKind = iota
	kindDiagonal
)

// splitRecord remembers a source cell's corners and every vertex a split
// created from it, so finish can test each one against the clamp
// inheritance rules once the whole batch of splits has run.
type splitRecord struct {
	kind splitKind

	sourceVerts [8]int // vertex index at each CellVertPos of the removed source cell
	newCells    []*grid.Cell

	// octree-only
	center      int
	edgeCenters [12]int
	faceCenters [6]int
	perpFaceOK  [6]bool
	perpFaceDir [6]geom.Vector3

	// diagonal-only: the midpoints of the two face diagonals (near and
	// opposite) between the two originally edge/vert-clamped corners,
	// for rule 6's polyline re-clamp.
	diagCorner0, diagCorner1 grid.CellVertPos
	diagMidNear, diagMidFar  int
	newVertsDiag             []int
}

// newVertices returns every vertex this record introduced, the pool rules
// 1-4 test against.
func (r *splitRecord) newVertices() []int {
	switch r.kind {
	case kindOctree:
		out := make([]int, 0, 19)
		out = append(out, r.center)
		out = append(out, r.edgeCenters[:]...)
		out = append(out, r.faceCenters[:]...)
		return out
	default:
		return r.newVertsDiag
	}
}
