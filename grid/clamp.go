// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/hexmesh/geom"

// ClampType is a one-hot bitmask identifying the kind of geometric
// constraint a Clamp carries. It is a bitmask rather than a plain
// enumeration so Matches can test against a set of acceptable tags with a
// single AND, the way the optimiser and splitter both need to.
type ClampType int

const (
	ClampUnknown ClampType = 0
	// ClampNone marks a vertex free to move in any direction.
	ClampNone ClampType = 1 << (iota - 1)
	// ClampFixed marks a vertex pinned at its current position.
	ClampFixed
	// ClampVert ties a vertex to a specific vertex of the surface model.
	ClampVert
	// ClampEdge ties a vertex to a point along a model polyline.
	ClampEdge
	// ClampTri ties a vertex to the plane of a specific surface triangle.
	ClampTri
	// ClampPerpendicular restricts motion to a line along a fixed direction.
	ClampPerpendicular
	// ClampParallel restricts motion to the plane normal to a fixed direction.
	ClampParallel
	// ClampCellEdgeCenter ties a vertex to the midpoint of a cell edge.
	ClampCellEdgeCenter
	// ClampCellFaceCenter ties a vertex to the centroid of a cell face.
	ClampCellFaceCenter
	// ClampGridTriPlane ties a vertex to the plane of three other grid
	// vertices (used when an octree split face must stay planar).
	ClampGridTriPlane
)

// String names a ClampType for logs and OBJ dump group comments.
func (t ClampType) String() string {
	switch t {
	case ClampNone:
		return "none"
	case ClampFixed:
		return "fixed"
	case ClampVert:
		return "vert"
	case ClampEdge:
		return "edge"
	case ClampTri:
		return "tri"
	case ClampPerpendicular:
		return "perpendicular"
	case ClampParallel:
		return "parallel"
	case ClampCellEdgeCenter:
		return "cell-edge-center"
	case ClampCellFaceCenter:
		return "cell-face-center"
	case ClampGridTriPlane:
		return "grid-tri-plane"
	default:
		return "unknown"
	}
}

// Clamp is the ten-tag tagged union of geometric constraints a grid vertex
// may carry (§3 Clamp). Only the fields relevant to Tag are meaningful; the
// rest are zero. A Clamp is a value type copied freely between a vertex's
// scratch slots.
type Clamp struct {
	Tag ClampType

	// Dir holds the fixed axis for ClampPerpendicular/ClampParallel.
	Dir geom.Vector3

	// Indices holds tag-specific integer payload:
	//   ClampVert:           [meshIdx, vertIdx, -]
	//   ClampEdge:           [meshIdx, polylineNumber, polylineIndex]
	//   ClampTri:            [triVert0, triVert1, triVert2]
	//   ClampGridTriPlane:   [gridVert0, gridVert1, gridVert2]
	//   ClampCellEdgeCenter: [edgeVertA, edgeVertB, -]
	//   ClampCellFaceCenter: [cellIdx, int(faceNumber), -]
	Indices [3]int
}

// NewNoneClamp returns an unconstrained clamp.
func NewNoneClamp() Clamp { return Clamp{Tag: ClampNone} }

// NewFixedClamp returns a clamp pinning a vertex at its current position.
func NewFixedClamp() Clamp { return Clamp{Tag: ClampFixed} }

// NewPerpendicularClamp restricts motion to the line through dir.
func NewPerpendicularClamp(dir geom.Vector3) Clamp {
	return Clamp{Tag: ClampPerpendicular, Dir: dir.Normalize()}
}

// NewParallelClamp restricts motion to the plane normal to dir.
func NewParallelClamp(dir geom.Vector3) Clamp {
	return Clamp{Tag: ClampParallel, Dir: dir.Normalize()}
}

// NewVertClamp ties a vertex to surface-model vertex vertIdx of mesh meshIdx.
func NewVertClamp(meshIdx, vertIdx int) Clamp {
	return Clamp{Tag: ClampVert, Indices: [3]int{meshIdx, vertIdx, 0}}
}

// NewTriClamp ties a vertex to the plane of surface triangle (v0,v1,v2).
func NewTriClamp(v0, v1, v2 int) Clamp {
	return Clamp{Tag: ClampTri, Indices: [3]int{v0, v1, v2}}
}

// NewGridTriPlaneClamp ties a vertex to the plane spanned by three other
// grid vertices.
func NewGridTriPlaneClamp(v0, v1, v2 int) Clamp {
	return Clamp{Tag: ClampGridTriPlane, Indices: [3]int{v0, v1, v2}}
}

// NewEdgeClamp ties a vertex to index polylineIndex of polyline
// polylineNumber belonging to surface model meshIdx.
func NewEdgeClamp(meshIdx, polylineNumber, polylineIndex int) Clamp {
	return Clamp{Tag: ClampEdge, Indices: [3]int{meshIdx, polylineNumber, polylineIndex}}
}

// NewCellEdgeCenterClamp ties a vertex to the midpoint of the grid edge
// between vertices a and b.
func NewCellEdgeCenterClamp(a, b int) Clamp {
	return Clamp{Tag: ClampCellEdgeCenter, Indices: [3]int{a, b, 0}}
}

// NewCellFaceCenterClamp ties a vertex to the centroid of face fn of cell
// cellIdx.
func NewCellFaceCenterClamp(cellIdx int, fn FaceNumber) Clamp {
	return Clamp{Tag: ClampCellFaceCenter, Indices: [3]int{cellIdx, int(fn), 0}}
}

// Matches reports whether c's tag is one of the tags set in mask, e.g.
// c.Matches(ClampEdge | ClampVert).
func (c Clamp) Matches(mask ClampType) bool {
	if c.Tag == ClampUnknown {
		panic("hexmesh: clamp has unknown tag")
	}
	return c.Tag&mask != 0
}

// PolylineIndex returns the polyline-local index of a ClampEdge clamp.
func (c Clamp) PolylineIndex() int {
	if c.Tag != ClampEdge {
		panic("hexmesh: PolylineIndex on non-edge clamp")
	}
	return c.Indices[2]
}

// WithPolylineIndex returns a copy of c, a ClampEdge clamp, retargeted to a
// different index along the same polyline, keeping its meshIdx and
// polylineNumber.
func (c Clamp) WithPolylineIndex(idx int) Clamp {
	if c.Tag != ClampEdge {
		panic("hexmesh: WithPolylineIndex on non-edge clamp")
	}
	c.Indices[2] = idx
	return c
}

// FaceNumber returns the face of a ClampCellFaceCenter clamp.
func (c Clamp) FaceNumber() FaceNumber {
	if c.Tag != ClampCellFaceCenter {
		panic("hexmesh: FaceNumber on non-cell-face-center clamp")
	}
	return FaceNumber(c.Indices[1])
}
