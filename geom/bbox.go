// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// BoundingBox is an axis-aligned box given by its min and max corners.
type BoundingBox struct {
	Min, Max Vector3
}

// NewBoundingBox returns the degenerate bounding box containing only pt.
func NewBoundingBox(pt Vector3) BoundingBox {
	return BoundingBox{Min: pt, Max: pt}
}

// NewBoundingBoxFromCorners builds a bounding box from two opposite corners,
// ordering them so Min <= Max componentwise.
func NewBoundingBoxFromCorners(a, b Vector3) BoundingBox {
	return BoundingBox{Min: Min(a, b), Max: Max(a, b)}
}

// Grow expands bb in place, minimally, to contain pt.
func (bb *BoundingBox) Grow(pt Vector3) {
	bb.Min = Min(bb.Min, pt)
	bb.Max = Max(bb.Max, pt)
}

// Union returns the smallest box containing both bb and other.
func (bb BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{Min: Min(bb.Min, other.Min), Max: Max(bb.Max, other.Max)}
}

// Inflate returns bb expanded by margin on every side.
func (bb BoundingBox) Inflate(margin float64) BoundingBox {
	m := Vector3{X: margin, Y: margin, Z: margin}
	return BoundingBox{Min: bb.Min.Sub(m), Max: bb.Max.Add(m)}
}

// Contains reports whether pt lies within bb (inclusive).
func (bb BoundingBox) Contains(pt Vector3) bool {
	return pt.X >= bb.Min.X && pt.X <= bb.Max.X &&
		pt.Y >= bb.Min.Y && pt.Y <= bb.Max.Y &&
		pt.Z >= bb.Min.Z && pt.Z <= bb.Max.Z
}

// Intersects reports whether bb and other overlap (inclusive).
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y &&
		bb.Min.Z <= other.Max.Z && bb.Max.Z >= other.Min.Z
}

// Center returns the midpoint of bb.
func (bb BoundingBox) Center() Vector3 {
	return bb.Min.Add(bb.Max).Mul(0.5)
}

// Size returns the per-axis extent of bb.
func (bb BoundingBox) Size() Vector3 {
	return bb.Max.Sub(bb.Min)
}
