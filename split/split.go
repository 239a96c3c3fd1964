// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import "github.com/cpmech/hexmesh/grid"

// Splitter batches cell splits against a grid and, once a batch is
// finished, runs the post-split clamp inheritance over every vertex the
// batch introduced (§4.4). The zero value is not usable; build one with
// NewSplitter per batch.
type Splitter struct {
	g       *grid.Grid
	records []*splitRecord
}

// NewSplitter returns a splitter operating on g.
func NewSplitter(g *grid.Grid) *Splitter {
	return &Splitter{g: g}
}

// SplitAll octree-splits every cell currently in the grid (the §4.6 stage
// 7 "divide pass") and runs clamp inheritance once every cell has been
// split.
func (s *Splitter) SplitAll() {
	ids := make([]int, s.g.NumCells())
	for i := range ids {
		ids[i] = s.g.CellAt(i).Id()
	}
	for _, id := range ids {
		if rec := s.octreeSplit(id); rec != nil {
			s.records = append(s.records, rec)
		}
	}
	s.finish()
}

// SplitWithDiagonals applies a diagonal split to every cell in cellIDs
// that has exactly two edge/vert-clamped corners on a face diagonal, then
// octree-splits every cell now in the grid (including the diagonal
// split's own cuboids), matching the polyline fitter's to-split handoff
// of §4.6 stage 5.
func (s *Splitter) SplitWithDiagonals(cellIDs []int) {
	for _, id := range cellIDs {
		fn, c0, c1, ok := DetectDiagonalSplit(s.g, id)
		if !ok {
			continue
		}
		if rec := s.diagonalSplit(id, fn, c0, c1); rec != nil {
			s.records = append(s.records, rec)
		}
	}
	s.SplitAll()
}

// finish runs the clamp inheritance rules over every record accumulated
// since the splitter was built, fixes up any CellEdgeCenter clamp left
// referencing a deleted cell, and clears the batch.
func (s *Splitter) finish() {
	for _, rec := range s.records {
		s.applyClampRules(rec)
	}
	s.fixBrokenLinks()
	s.records = nil
}
