// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hexmesh/geom"
)

// gridFileVersion is the version token written at the top of a grid file
// and required on read, following gofem's fem/fileio.go practice of
// stamping every persisted artifact with a format version.
const gridFileVersion = "GridBase version 1"

// clampTypeNames maps every ClampType to its serialised token, and back.
var clampTypeNames = map[ClampType]string{
	ClampNone:           "CLAMP_NONE",
	ClampFixed:          "CLAMP_FIXED",
	ClampVert:           "CLAMP_VERT",
	ClampEdge:           "CLAMP_EDGE",
	ClampTri:            "CLAMP_TRI",
	ClampPerpendicular:  "CLAMP_PERPENDICULAR",
	ClampParallel:       "CLAMP_PARALLEL",
	ClampCellEdgeCenter: "CLAMP_CELL_EDGE_CENTER",
	ClampCellFaceCenter: "CLAMP_CELL_FACE_CENTER",
	ClampGridTriPlane:   "CLAMP_GRID_TRI_PLANE",
}

var clampNameToType = func() map[string]ClampType {
	m := make(map[string]ClampType, len(clampTypeNames))
	for t, n := range clampTypeNames {
		m[n] = t
	}
	return m
}()

// Save writes g to w using the versioned text grammar of §6: a
// GridBase header, the vertex table (position, owning cells, clamp), the
// logical-id to storage-index cell map, and the cell table (rest edge
// lengths and corner indices).
func (g *Grid) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, gridFileVersion)
	fmt.Fprintf(bw, "Verts %d\n", len(g.verts))
	for i, v := range g.verts {
		fmt.Fprintf(bw, "VT: %d\n", i)
		p := v.Pt()
		fmt.Fprintf(bw, "PT: %.15g %.15g %.15g\n", p.X, p.Y, p.Z)
		fmt.Fprintf(bw, "CI:")
		for _, ci := range v.CellIndices() {
			fmt.Fprintf(bw, " %d", ci)
		}
		fmt.Fprintln(bw)
		if err := writeClamp(bw, v.Clamp()); err != nil {
			return err
		}
	}

	fmt.Fprintf(bw, "CellIndexMap %d\n", len(g.cellIndexOf))
	for id, storageIdx := range g.cellIndexOf {
		fmt.Fprintf(bw, "%d %d\n", id, storageIdx)
	}

	fmt.Fprintf(bw, "Cells %d\n", len(g.cells))
	for _, c := range g.cells {
		fmt.Fprintf(bw, "ID: %d\n", c.id)
		fmt.Fprint(bw, "REL:")
		for i := 0; i < 12; i++ {
			fmt.Fprintf(bw, " %.15g", c.restEdgeLen[i])
		}
		fmt.Fprintln(bw)
		fmt.Fprint(bw, "VI:")
		for i := 0; i < 8; i++ {
			fmt.Fprintf(bw, " %d", c.vertIndices[i])
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// writeClamp emits a clamp's tag token, and any tag-specific payload lines
// (RI: for the three integer indices, V: for the direction vector).
func writeClamp(w io.Writer, c Clamp) error {
	name, ok := clampTypeNames[c.Tag]
	if !ok {
		return chk.Err("gridio: clamp has unserialisable tag %v", c.Tag)
	}
	fmt.Fprintf(w, "CT: %s\n", name)
	switch c.Tag {
	case ClampPerpendicular, ClampParallel:
		fmt.Fprintf(w, "V: %.15g %.15g %.15g\n", c.Dir.X, c.Dir.Y, c.Dir.Z)
	case ClampVert, ClampEdge, ClampTri, ClampGridTriPlane, ClampCellEdgeCenter, ClampCellFaceCenter:
		fmt.Fprintf(w, "RI: %d %d %d\n", c.Indices[0], c.Indices[1], c.Indices[2])
	}
	return nil
}

// Load parses a grid file written by Save, per §6's grammar. A malformed
// token or missing payload line is a parse error (§7).
func Load(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line, ok := nextLine(sc)
	if !ok || line != gridFileVersion {
		return nil, chk.Err("gridio: expected %q, got %q", gridFileVersion, line)
	}

	nVerts, err := expectCount(sc, "Verts")
	if err != nil {
		return nil, err
	}

	g := NewGrid()
	type pending struct {
		pt    geom.Vector3
		cells []int
		clamp Clamp
	}
	rows := make([]pending, nVerts)
	for i := 0; i < nVerts; i++ {
		if err := expectPrefix(sc, "VT:"); err != nil {
			return nil, err
		}
		ptLine, err := expectField(sc, "PT:")
		if err != nil {
			return nil, err
		}
		x, y, z, err := parseVec3(ptLine)
		if err != nil {
			return nil, err
		}
		rows[i].pt = geom.NewVector3(x, y, z)

		ciLine, err := expectField(sc, "CI:")
		if err != nil {
			return nil, err
		}
		for _, tok := range strings.Fields(ciLine) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, chk.Err("gridio: bad cell index %q", tok)
			}
			rows[i].cells = append(rows[i].cells, n)
		}

		clamp, err := readClamp(sc)
		if err != nil {
			return nil, err
		}
		rows[i].clamp = clamp
	}

	for i := 0; i < nVerts; i++ {
		idx := g.AddVertex(rows[i].pt)
		g.verts[idx].SetClamp(rows[i].clamp)
		for _, ci := range rows[i].cells {
			g.verts[idx].AddCellIndex(ci)
		}
	}

	nMap, err := expectCount(sc, "CellIndexMap")
	if err != nil {
		return nil, err
	}
	cellIndexOf := make(map[int]int, nMap)
	for i := 0; i < nMap; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, chk.Err("gridio: truncated CellIndexMap")
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, chk.Err("gridio: malformed CellIndexMap entry %q", line)
		}
		id, err1 := strconv.Atoi(fields[0])
		storageIdx, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, chk.Err("gridio: malformed CellIndexMap entry %q", line)
		}
		cellIndexOf[id] = storageIdx
	}

	nCells, err := expectCount(sc, "Cells")
	if err != nil {
		return nil, err
	}
	cells := make([]*Cell, nCells)
	maxID := -1
	for i := 0; i < nCells; i++ {
		idLine, err := expectField(sc, "ID:")
		if err != nil {
			return nil, err
		}
		id, err := strconv.Atoi(strings.TrimSpace(idLine))
		if err != nil {
			return nil, chk.Err("gridio: bad cell id %q", idLine)
		}
		relLine, err := expectField(sc, "REL:")
		if err != nil {
			return nil, err
		}
		relToks := strings.Fields(relLine)
		if len(relToks) != 12 {
			return nil, chk.Err("gridio: cell %d expected 12 rest edge lengths, got %d", id, len(relToks))
		}
		viLine, err := expectField(sc, "VI:")
		if err != nil {
			return nil, err
		}
		viToks := strings.Fields(viLine)
		if len(viToks) != 8 {
			return nil, chk.Err("gridio: cell %d expected 8 vertex indices, got %d", id, len(viToks))
		}
		var verts [8]int
		for k, tok := range viToks {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, chk.Err("gridio: bad vertex index %q", tok)
			}
			verts[k] = n
		}
		c := NewCell(id, verts)
		for k, tok := range relToks {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, chk.Err("gridio: bad rest edge length %q", tok)
			}
			c.restEdgeLen[k] = v
		}
		cells[i] = c
		if id > maxID {
			maxID = id
		}
	}
	g.cells = cells
	if len(cellIndexOf) > 0 {
		g.cellIndexOf = cellIndexOf
	} else {
		g.cellIndexOf = make(map[int]int, len(cells))
		for i, c := range cells {
			g.cellIndexOf[c.id] = i
		}
	}
	g.nextCellID = maxID + 1

	return g, nil
}

func readClamp(sc *bufio.Scanner) (Clamp, error) {
	ctLine, err := expectField(sc, "CT:")
	if err != nil {
		return Clamp{}, err
	}
	name := strings.TrimSpace(ctLine)
	tag, ok := clampNameToType[name]
	if !ok {
		return Clamp{}, chk.Err("gridio: unknown clamp token %q", name)
	}
	c := Clamp{Tag: tag}
	switch tag {
	case ClampPerpendicular, ClampParallel:
		vLine, err := expectField(sc, "V:")
		if err != nil {
			return Clamp{}, err
		}
		x, y, z, err := parseVec3(vLine)
		if err != nil {
			return Clamp{}, err
		}
		c.Dir = geom.NewVector3(x, y, z)
	case ClampVert, ClampEdge, ClampTri, ClampGridTriPlane, ClampCellEdgeCenter, ClampCellFaceCenter:
		riLine, err := expectField(sc, "RI:")
		if err != nil {
			return Clamp{}, err
		}
		toks := strings.Fields(riLine)
		if len(toks) != 3 {
			return Clamp{}, chk.Err("gridio: clamp %s expected 3 indices, got %d", name, len(toks))
		}
		for i, tok := range toks {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return Clamp{}, chk.Err("gridio: bad clamp index %q", tok)
			}
			c.Indices[i] = n
		}
	}
	return c, nil
}

func parseVec3(line string) (x, y, z float64, err error) {
	toks := strings.Fields(line)
	if len(toks) != 3 {
		return 0, 0, 0, chk.Err("gridio: expected 3 numbers, got %q", line)
	}
	vals := make([]float64, 3)
	for i, t := range toks {
		vals[i], err = strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, 0, 0, chk.Err("gridio: bad number %q", t)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func expectPrefix(sc *bufio.Scanner, prefix string) error {
	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(line, prefix) {
		return chk.Err("gridio: expected line starting %q, got %q", prefix, line)
	}
	return nil
}

// expectField reads a line starting with prefix and returns the rest of
// the line (the payload after the token).
func expectField(sc *bufio.Scanner, prefix string) (string, error) {
	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(line, prefix) {
		return "", chk.Err("gridio: expected line starting %q, got %q", prefix, line)
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix)), nil
}

// expectCount reads a "<label> <N>" header line and returns N.
func expectCount(sc *bufio.Scanner, label string) (int, error) {
	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(line, label+" ") {
		return 0, chk.Err("gridio: expected %q header, got %q", label, line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, label+" ")))
	if err != nil {
		return 0, chk.Err("gridio: bad %s count %q", label, line)
	}
	return n, nil
}
