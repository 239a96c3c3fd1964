// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hexmesh/energy"
	"github.com/cpmech/hexmesh/geom"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/inp"
)

// buildInitialGrid divides params' bounding box into round(range/maxEdge)
// divisions per axis and emits a cell per lattice cube (§4.6 stage 1).
func buildInitialGrid(p *inp.Params) *grid.Grid {
	bb := p.Bounds()
	size := bb.Size()
	nx := divisions(size.X, p.MaxEdgeLength)
	ny := divisions(size.Y, p.MaxEdgeLength)
	nz := divisions(size.Z, p.MaxEdgeLength)

	g := grid.NewGrid()
	ids := make([][][]int, nx+1)
	for i := range ids {
		ids[i] = make([][]int, ny+1)
		for j := range ids[i] {
			ids[i][j] = make([]int, nz+1)
		}
	}

	stepX, stepY, stepZ := size.X/float64(nx), size.Y/float64(ny), size.Z/float64(nz)
	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			for k := 0; k <= nz; k++ {
				pt := geom.NewVector3(
					bb.Min.X+float64(i)*stepX,
					bb.Min.Y+float64(j)*stepY,
					bb.Min.Z+float64(k)*stepZ,
				)
				ids[i][j][k] = g.AddVertex(pt)
			}
		}
	}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				var verts [8]int
				for dx := 0; dx < 2; dx++ {
					for dy := 0; dy < 2; dy++ {
						for dz := 0; dz < 2; dz++ {
							verts[grid.VertPosOf(dx, dy, dz)] = ids[i+dx][j+dy][k+dz]
						}
					}
				}
				g.AddCell(verts)
			}
		}
	}
	return g
}

func divisions(extent, maxEdge float64) int {
	n := int(math.Round(extent / maxEdge))
	if n < 1 {
		n = 1
	}
	return n
}

// verifyZeroEnergy is the stage-1 sanity check: a freshly built lattice
// cell has every edge at its rest length and every corner orthogonal, so
// its energy must be (numerically) zero.
func verifyZeroEnergy(g *grid.Grid) error {
	pos := func(vi int) geom.Vector3 { return g.VertexAt(vi).Pt() }
	for _, c := range g.Cells() {
		if e := energy.CellEnergy(c, pos); e > 1e-6 {
			return chk.Err("pipeline: freshly built cell %d has non-zero energy %v", c.Id(), e)
		}
	}
	return nil
}

var axisVec = [3]geom.Vector3{geom.VX, geom.VY, geom.VZ}

// axisSigns classifies v's incident cells by which side of v their
// centroid falls on, per axis: varies[a] is true when v has cells on both
// sides along axis a, and constSign[a] gives the common side when it
// doesn't.
func axisSigns(g *grid.Grid, v *grid.Vertex) (varies [3]bool, constSign [3]float64) {
	p := v.Pt()
	var signs [3][]float64
	for _, cid := range v.CellIndices() {
		d := g.CellByID(cid).CalcCentroid(g).Sub(p)
		for a := 0; a < 3; a++ {
			s := 1.0
			if geom.Component(d, a) < 0 {
				s = -1.0
			}
			signs[a] = append(signs[a], s)
		}
	}
	for a := 0; a < 3; a++ {
		same := true
		for _, s := range signs[a][1:] {
			if s != signs[a][0] {
				same = false
				break
			}
		}
		varies[a] = !same
		if !varies[a] && len(signs[a]) > 0 {
			constSign[a] = signs[a][0]
		}
	}
	return
}

// classifyBoundaryClamps implements §4.6 stage 2: classify every vertex by
// its incident-cell count and assign the matching clamp.
func classifyBoundaryClamps(g *grid.Grid) {
	for _, v := range g.Vertices() {
		switch v.NumCells() {
		case 1:
			v.SetClamp(grid.NewFixedClamp())
		case 4:
			varies, constSign := axisSigns(g, v)
			for a := 0; a < 3; a++ {
				if !varies[a] {
					v.SetClamp(grid.NewPerpendicularClamp(axisVec[a].Mul(-constSign[a])))
					break
				}
			}
		case 2:
			varies, _ := axisSigns(g, v)
			for a := 0; a < 3; a++ {
				if varies[a] {
					v.SetClamp(grid.NewParallelClamp(axisVec[a]))
					break
				}
			}
		}
	}
}

// snapCusps implements §4.6 stage 3: for every surface cusp, the nearest
// grid vertex within a Manhattan-norm radius of 1.5*maxEdge gets a Vert
// clamp. Cusps are not filtered against the grid bounds first, and the
// clamp records mesh 0 and the grid vertex's own index, since a cusp
// carries no surface vertex index.
func snapCusps(g *grid.Grid, cusps []geom.Vector3, maxEdge float64) {
	radius := 1.5 * maxEdge
	for _, cusp := range cusps {
		best, bestD := -1, 0.0
		for _, id := range g.SpatialIndex().QueryManhattan(cusp, radius) {
			d := g.VertexAt(id).Pt().Sub(cusp).Norm2()
			if best < 0 || d < bestD {
				best, bestD = id, d
			}
		}
		if best >= 0 {
			g.VertexAt(best).SetClamp(grid.NewVertClamp(0, best))
		}
	}
}
