// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "testing"

func TestIntersectTriangleHit(t *testing.T) {
	seg := LineSegment{A: NewVector3(0.25, 0.25, -1), B: NewVector3(0.25, 0.25, 1)}
	p0 := NewVector3(0, 0, 0)
	p1 := NewVector3(1, 0, 0)
	p2 := NewVector3(0, 1, 0)

	hit, ok := seg.IntersectTriangle(p0, p1, p2)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !SamePoint(hit.Point, NewVector3(0.25, 0.25, 0)) {
		t.Fatalf("unexpected hit point: %v", hit.Point)
	}
	if hit.T < 0.49 || hit.T > 0.51 {
		t.Fatalf("unexpected parametric t: %v", hit.T)
	}
}

func TestIntersectTriangleMiss(t *testing.T) {
	seg := LineSegment{A: NewVector3(2, 2, -1), B: NewVector3(2, 2, 1)}
	p0 := NewVector3(0, 0, 0)
	p1 := NewVector3(1, 0, 0)
	p2 := NewVector3(0, 1, 0)

	if _, ok := seg.IntersectTriangle(p0, p1, p2); ok {
		t.Fatalf("expected no hit outside the triangle")
	}
}

func TestIntersectTriangleParallel(t *testing.T) {
	seg := LineSegment{A: NewVector3(0.1, 0.1, 1), B: NewVector3(0.5, 0.1, 1)}
	p0 := NewVector3(0, 0, 0)
	p1 := NewVector3(1, 0, 0)
	p2 := NewVector3(0, 1, 0)

	if _, ok := seg.IntersectTriangle(p0, p1, p2); ok {
		t.Fatalf("expected no hit for a segment parallel to the triangle's plane")
	}
}
