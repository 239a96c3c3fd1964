// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// CellVertPos names the eight corners of a hexahedral cell.
type CellVertPos int

const (
	LwrFntLft CellVertPos = iota
	LwrFntRgt
	LwrBckLft
	LwrBckRgt
	UprFntLft
	UprFntRgt
	UprBckLft
	UprBckRgt
	CvpUnknown
)

// VertEdgeDir names the direction, along a cell corner, of one of its three
// incident edges.
type VertEdgeDir int

const (
	XPos VertEdgeDir = iota
	YPos
	ZPos
	XNeg
	YNeg
	ZNeg
	VedUnknown
)

// FaceNumber names the six faces of a hexahedral cell.
type FaceNumber int

const (
	Bottom FaceNumber = iota
	Top
	Front
	Back
	Left
	Right
	FnUnknown
)

// String gives FaceNumber a readable name for logs and OBJ group comments.
func (f FaceNumber) String() string {
	switch f {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// faceCornerLUT lists, for each face, its four corners in a consistent
// winding order (outward normal by the right-hand rule).
var faceCornerLUT = [6][4]CellVertPos{
	{LwrFntLft, LwrBckLft, LwrBckRgt, LwrFntRgt}, // bottom
	{UprFntLft, UprFntRgt, UprBckRgt, UprBckLft}, // top
	{LwrFntLft, LwrFntRgt, UprFntRgt, UprFntLft}, // front
	{LwrBckLft, UprBckLft, UprBckRgt, LwrBckRgt}, // back
	{LwrFntLft, UprFntLft, UprBckLft, LwrBckLft}, // left
	{LwrFntRgt, LwrBckRgt, UprBckRgt, UprFntRgt}, // right
}

// faceEdgeDirLUT gives, for each face and each of its four corners (in the
// same order as faceCornerLUT), the direction of the in-face edge leaving
// that corner along the face's boundary.
var faceEdgeDirLUT = [6][4]VertEdgeDir{
	{YPos, XPos, YNeg, XNeg}, // bottom
	{XPos, YPos, XNeg, YNeg}, // top
	{XPos, ZPos, XNeg, ZNeg}, // front
	{ZPos, XPos, ZNeg, XNeg}, // back
	{ZPos, YPos, ZNeg, YNeg}, // left
	{YPos, ZPos, YNeg, ZNeg}, // right
}

// cornerEdgeLUT gives, for each corner and each of the six VertEdgeDir
// values, the corner reached by following that edge direction, or
// CvpUnknown when the corner has no edge in that direction.
var cornerEdgeLUT = [8][6]CellVertPos{
	{LwrFntRgt, LwrBckLft, UprFntLft, CvpUnknown, CvpUnknown, CvpUnknown}, // LwrFntLft
	{CvpUnknown, LwrBckRgt, UprFntRgt, LwrFntLft, CvpUnknown, CvpUnknown}, // LwrFntRgt
	{LwrBckRgt, CvpUnknown, UprBckLft, CvpUnknown, LwrFntLft, CvpUnknown}, // LwrBckLft
	{CvpUnknown, CvpUnknown, UprBckRgt, LwrBckLft, LwrFntRgt, CvpUnknown}, // LwrBckRgt
	{UprFntRgt, UprBckLft, CvpUnknown, CvpUnknown, CvpUnknown, LwrFntLft}, // UprFntLft
	{CvpUnknown, UprBckRgt, CvpUnknown, UprFntLft, CvpUnknown, LwrFntRgt}, // UprFntRgt
	{UprBckRgt, CvpUnknown, CvpUnknown, CvpUnknown, UprFntLft, LwrBckLft}, // UprBckLft
	{CvpUnknown, CvpUnknown, CvpUnknown, UprBckLft, UprFntRgt, LwrBckRgt}, // UprBckRgt
}

// cellEdgeVerts lists the 12 edges of a cell as corner-index pairs, grouped
// front face, back face, then the four front-to-back edges.
var cellEdgeVerts = [12][2]CellVertPos{
	{LwrFntLft, LwrFntRgt},
	{LwrFntRgt, UprFntRgt},
	{UprFntRgt, UprFntLft},
	{UprFntLft, LwrFntLft},

	{LwrBckLft, LwrBckRgt},
	{LwrBckRgt, UprBckRgt},
	{UprBckRgt, UprBckLft},
	{UprBckLft, LwrBckLft},

	{LwrFntLft, LwrBckLft},
	{LwrFntRgt, LwrBckRgt},
	{UprFntRgt, UprBckRgt},
	{UprFntLft, UprBckLft},
}

// cornerFacesLUT gives, for each corner, the three faces meeting there.
var cornerFacesLUT = [8][3]FaceNumber{
	{Bottom, Left, Front},
	{Bottom, Right, Front},
	{Bottom, Left, Back},
	{Bottom, Right, Back},
	{Top, Left, Front},
	{Top, Right, Front},
	{Top, Left, Back},
	{Top, Right, Back},
}

// oppositeCornerLUT gives, for each corner, the corner diagonally opposite
// it across the cell's body diagonal.
var oppositeCornerLUT = [8]CellVertPos{
	UprBckRgt, UprBckLft, UprFntRgt, UprFntLft,
	LwrBckRgt, LwrBckLft, LwrFntRgt, LwrFntLft,
}

// oppositeFaceLUT gives, for each face, the face on the opposite side of
// the cell.
var oppositeFaceLUT = [6]FaceNumber{
	Top, Bottom, Back, Front, Right, Left,
}

// SignedCorner pairs an edge-adjacent corner with the sign needed to orient
// that edge's direction consistently for the bend-energy calculation (C5):
// all three edges at a corner must point the same rotational way around
// the corner for the cross-product/dot-product triple to measure the
// correct dihedral angle.
type SignedCorner struct {
	Sign float64
	Pos  CellVertPos
}

// orientedEdgePosLUT gives, for each corner, its three edge-adjacent
// corners with the sign needed to orient their shared edges consistently.
var orientedEdgePosLUT = [8][3]SignedCorner{
	{{1, LwrFntRgt}, {1, LwrBckLft}, {1, UprFntLft}},   // LwrFntLft
	{{1, LwrBckRgt}, {1, UprFntRgt}, {-1, LwrFntLft}},  // LwrFntRgt
	{{1, LwrBckRgt}, {-1, LwrFntLft}, {1, UprBckLft}},  // LwrBckLft
	{{-1, LwrBckLft}, {-1, LwrFntRgt}, {1, UprBckRgt}}, // LwrBckRgt
	{{-1, LwrFntLft}, {1, UprFntRgt}, {1, UprBckLft}},  // UprFntLft
	{{1, UprBckRgt}, {-1, LwrFntRgt}, {-1, UprFntLft}}, // UprFntRgt
	{{-1, UprFntLft}, {-1, LwrBckLft}, {1, UprBckRgt}}, // UprBckLft
	{{-1, UprBckLft}, {-1, UprFntRgt}, {-1, LwrBckRgt}}, // UprBckRgt
}

// OrientedAdjacentCorners returns pos's three edge-adjacent corners, each
// paired with the sign needed to orient the shared edge outward in a
// rotationally consistent way.
func OrientedAdjacentCorners(pos CellVertPos) [3]SignedCorner { return orientedEdgePosLUT[pos] }

// CellEdgeVerts returns the pair of corners bounding logical edge i (0..11).
func CellEdgeVerts(i int) [2]CellVertPos { return cellEdgeVerts[i] }

// EdgeIndexOf returns the logical edge index (0..11) connecting corners a
// and b in either order, or -1 if they are not edge-adjacent.
func EdgeIndexOf(a, b CellVertPos) int {
	for i, pair := range cellEdgeVerts {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return i
		}
	}
	return -1
}
