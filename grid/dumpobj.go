// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bufio"
	"fmt"
	"io"
)

// clampColor gives each ClampType a diagnostic RGB triple for the OBJ
// dump's vertex colors (§6, "each vertex labeled with a diagnostic color
// keyed on clamp tag"); OBJ's extended vertex-color syntax is widely
// accepted by mesh viewers even though it is not part of the core spec.
var clampColor = map[ClampType][3]float64{
	ClampNone:           {0.6, 0.6, 0.6},
	ClampFixed:          {1, 0, 0},
	ClampVert:           {1, 0, 1},
	ClampEdge:           {0, 0, 1},
	ClampTri:            {0, 1, 1},
	ClampPerpendicular:  {1, 1, 0},
	ClampParallel:       {1, 0.5, 0},
	ClampCellEdgeCenter: {0, 1, 0},
	ClampCellFaceCenter: {0, 0.6, 0},
	ClampGridTriPlane:   {0.5, 0, 1},
}

// DumpOBJ writes g's cell faces as an OBJ mesh, coloring each vertex by
// its clamp tag, for ad hoc visual inspection outside the core pipeline.
func (g *Grid) DumpOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# hexmesh grid dump: %d verts, %d cells\n", len(g.verts), len(g.cells))
	for _, v := range g.verts {
		p := v.Pt()
		col := clampColor[v.Clamp().Tag]
		fmt.Fprintf(bw, "v %.9g %.9g %.9g %.3g %.3g %.3g\n", p.X, p.Y, p.Z, col[0], col[1], col[2])
	}
	for _, c := range g.cells {
		for fn := FaceNumber(0); fn < 6; fn++ {
			idx := c.GetFaceIndices(fn)
			fmt.Fprintf(bw, "f %d %d %d %d\n", idx[0]+1, idx[1]+1, idx[2]+1, idx[3]+1)
		}
	}
	return bw.Flush()
}
