// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package energy implements the per-cell and per-vertex spring-energy
// model (C5): a compression term driven by deviation from each edge's
// rest length, and a bend term penalising non-orthogonal corners.
package energy

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
)

// compressionK is the compression-energy coefficient (§4.2).
const compressionK = 10.0

// bendK is the bend-energy coefficient (§4.2).
const bendK = 1000.0

// maxEnergy is the ceiling above which bend energy is treated as a
// numerical guard failure (§4.2, §7).
const maxEnergy = 1.0e5

// CellSource is the minimal read access energy needs into a grid cell's
// geometry, satisfied by *grid.Cell together with a *grid.Grid.
type CellSource interface {
	VertIdx(pos grid.CellVertPos) int
	RestEdgeLength(i int) float64
}

// PositionOf resolves vertex vi's position, optionally substituted by an
// override (the moving vertex during a line-search evaluation).
type PositionOf func(vertIdx int) geom.Vector3

// CompressionEnergy returns cell's compression energy: the sum over its 12
// edges of compressionK * (len - rest)^2.
func CompressionEnergy(cell CellSource, pos PositionOf) float64 {
	total := 0.0
	for e := 0; e < 12; e++ {
		pair := grid.CellEdgeVerts(e)
		a := pos(cell.VertIdx(pair[0]))
		b := pos(cell.VertIdx(pair[1]))
		len := a.Sub(b).Norm()
		rest := cell.RestEdgeLength(e)
		delta := len - rest
		total += compressionK * delta * delta
	}
	return total
}

// BendEnergy returns cell's bend energy: for every corner, the sum over
// its three cyclic edge-direction pairs of bendK * (theta/pi)^2, where
// theta is the angle between (a x b) and the third edge c. Panics if the
// accumulated energy exceeds maxEnergy (the numerical guard of §7 — bend
// energy blowing up signals a cell has inverted or degenerated).
func BendEnergy(cell CellSource, pos PositionOf) float64 {
	total := 0.0
	for p := grid.CellVertPos(0); p < grid.CvpUnknown; p++ {
		vertIdx := cell.VertIdx(p)
		here := pos(vertIdx)
		adj := grid.OrientedAdjacentCorners(p)
		var dirs [3]geom.Vector3
		for i, sc := range adj {
			other := pos(cell.VertIdx(sc.Pos))
			dirs[i] = other.Sub(here).Mul(sc.Sign)
		}
		for i := 0; i < 3; i++ {
			a := dirs[i]
			b := dirs[(i+1)%3]
			c := dirs[(i+2)%3]
			n := a.Cross(b)
			cosTheta := n.Dot(c)
			sinTheta := n.Cross(c).Norm()
			theta := math.Atan2(sinTheta, cosTheta) / math.Pi
			e := bendK * theta * theta
			total += e
		}
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		panic("energy: bend energy is not finite")
	}
	if total > maxEnergy {
		panic(chk.Err("energy: bend energy %v exceeds bound %v", total, maxEnergy))
	}
	return total
}

// CellEnergy returns cell's total energy: compression plus bend.
func CellEnergy(cell CellSource, pos PositionOf) float64 {
	return CompressionEnergy(cell, pos) + BendEnergy(cell, pos)
}

// VertexSource supplies the cells incident on a vertex, for aggregating
// per-vertex energy (§4.2 "per-vertex energy is the sum of the energies
// of every cell listing that vertex").
type VertexSource interface {
	CellIndices() []int
}

// CellByIndex resolves a cell index to its geometry.
type CellByIndex func(cellIdx int) CellSource

// VertexEnergy sums CellEnergy over every cell incident on vert.
func VertexEnergy(vert VertexSource, cellOf CellByIndex, pos PositionOf) float64 {
	total := 0.0
	for _, ci := range vert.CellIndices() {
		total += CellEnergy(cellOf(ci), pos)
	}
	return total
}
