// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/hexmesh/geom"

// NumWorkers is the number of optimiser worker goroutines (§5); vertex
// scratch slots are sized NumWorkers+1, slot 0 being the canonical value.
const NumWorkers = 4

// Vertex is a grid vertex: a stable index, N+1 scratch copies of its
// position and clamp (slot 0 canonical, slots 1..NumWorkers per-worker
// speculative copies), a stash slot for two-step commits, and the ordered,
// de-duplicated list of cells that reference it (V1-V4).
type Vertex struct {
	index int

	pt    [NumWorkers + 1]geom.Vector3
	clamp [NumWorkers + 1]Clamp

	stashPt    geom.Vector3
	stashClamp Clamp
	hasStash   bool

	changeNumber int
	cellIndices  []int
}

// NewVertex returns a vertex at index idx, positioned at pt, unclamped.
func NewVertex(idx int, pt geom.Vector3) *Vertex {
	v := &Vertex{index: idx}
	for i := range v.pt {
		v.pt[i] = pt
		v.clamp[i] = NewNoneClamp()
	}
	v.changeNumber = 1
	return v
}

// Index returns v's stable position in the grid's vertex array.
func (v *Vertex) Index() int { return v.index }

// ChangeNumber returns the monotonically increasing counter bumped every
// time slot 0's position or clamp changes, used to detect staleness of
// cached per-vertex derived quantities (rest lengths, gradients).
func (v *Vertex) ChangeNumber() int { return v.changeNumber }

// Pt returns the canonical (slot 0) position.
func (v *Vertex) Pt() geom.Vector3 { return v.pt[0] }

// SetPt sets the canonical position directly, bumping the change number.
// Used outside the optimiser's Seed/Work/Commit barrier (initial grid
// construction, the splitter, the polyline fitter).
func (v *Vertex) SetPt(pt geom.Vector3) {
	v.pt[0] = pt
	v.changeNumber++
}

// Clamp returns the canonical (slot 0) clamp.
func (v *Vertex) Clamp() Clamp { return v.clamp[0] }

// SetClamp sets the canonical clamp directly, bumping the change number.
func (v *Vertex) SetClamp(c Clamp) {
	v.clamp[0] = c
	v.changeNumber++
}

// SlotPt returns the position held in worker scratch slot slot (1..NumWorkers).
func (v *Vertex) SlotPt(slot int) geom.Vector3 { return v.pt[slot] }

// SetSlotPt sets the position held in worker scratch slot slot.
func (v *Vertex) SetSlotPt(slot int, pt geom.Vector3) { v.pt[slot] = pt }

// SlotClamp returns the clamp held in worker scratch slot slot.
func (v *Vertex) SlotClamp(slot int) Clamp { return v.clamp[slot] }

// CopyToSlots seeds every worker scratch slot from the canonical slot 0
// (the Seed phase of §5's three-phase barrier).
func (v *Vertex) CopyToSlots() {
	for i := 1; i < len(v.pt); i++ {
		v.pt[i] = v.pt[0]
		v.clamp[i] = v.clamp[0]
	}
}

// CommitSlot copies worker scratch slot slot back to the canonical slot 0
// (the Commit phase of §5's barrier, invoked only for the one slot whose
// owning worker produced the accepted move for this vertex).
func (v *Vertex) CommitSlot(slot int) {
	if v.pt[slot] != v.pt[0] || v.clamp[slot] != v.clamp[0] {
		v.changeNumber++
	}
	v.pt[0] = v.pt[slot]
	v.clamp[0] = v.clamp[slot]
}

// SetStash stages a position and clamp without touching the canonical
// slot, for operations that must verify a move before committing it.
func (v *Vertex) SetStash(pt geom.Vector3, c Clamp) {
	v.stashPt = pt
	v.stashClamp = c
	v.hasStash = true
}

// StashPt returns the staged position, and whether one is pending.
func (v *Vertex) StashPt() (geom.Vector3, bool) { return v.stashPt, v.hasStash }

// CommitStash promotes the staged position and clamp to canonical.
func (v *Vertex) CommitStash() {
	if !v.hasStash {
		return
	}
	v.pt[0] = v.stashPt
	v.clamp[0] = v.stashClamp
	v.hasStash = false
	v.changeNumber++
}

// ClearStash discards a staged move without applying it.
func (v *Vertex) ClearStash() { v.hasStash = false }

// RunScopedOptimization captures v's (position, clamp), runs fn — which is
// expected to move v toward a local optimum by calling SetPt/SetClamp
// directly — then stages the result in v's stash slot and restores v's
// position and clamp (the change number keeps any bumps fn made). fn works
// on the canonical slot 0, so other readers of v see its trial moves while
// it runs; the staged result is applied later with CommitStash.
func (v *Vertex) RunScopedOptimization(fn func()) {
	savedPt := v.pt[0]
	savedClamp := v.clamp[0]
	fn()
	v.SetStash(v.pt[0], v.clamp[0])
	v.pt[0] = savedPt
	v.clamp[0] = savedClamp
}

// AddCellIndex records that cellIdx references v, ignoring duplicates
// (V-side half of the vertex/cell backlink).
func (v *Vertex) AddCellIndex(cellIdx int) {
	for _, c := range v.cellIndices {
		if c == cellIdx {
			return
		}
	}
	v.cellIndices = append(v.cellIndices, cellIdx)
}

// RemoveCellIndex drops cellIdx from v's owning-cell list.
func (v *Vertex) RemoveCellIndex(cellIdx int) {
	for i, c := range v.cellIndices {
		if c == cellIdx {
			v.cellIndices = append(v.cellIndices[:i], v.cellIndices[i+1:]...)
			return
		}
	}
}

// LinkedToCell reports whether cellIdx is one of v's owning cells.
func (v *Vertex) LinkedToCell(cellIdx int) bool {
	for _, c := range v.cellIndices {
		if c == cellIdx {
			return true
		}
	}
	return false
}

// CellIndices returns v's owning cells in insertion order (V4).
func (v *Vertex) CellIndices() []int { return v.cellIndices }

// NumCells returns the number of cells referencing v.
func (v *Vertex) NumCells() int { return len(v.cellIndices) }
