// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"testing"

	"github.com/cpmech/hexmesh/inp"
)

func testParams() *inp.Params {
	return &inp.Params{
		MinEdgeLength: 0.5,
		MaxEdgeLength: 1.0,
		MinGapSize:    0.1,
		SharpAngleDeg: 30,
		BoundsMin:     [3]float64{0, 0, 0},
		BoundsMax:     [3]float64{1, 1, 1},
	}
}

func TestDriverRunWithNoModels(t *testing.T) {
	d := NewDriver(testParams(), nil, nil)
	g, err := d.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumCells() == 0 {
		t.Fatalf("expected a non-empty grid")
	}
	if err := g.Verify(); err != nil {
		t.Fatalf("final grid failed verify: %v", err)
	}
}

func TestCalcDivideRounds(t *testing.T) {
	cases := []struct {
		max, min float64
		want     int
	}{
		{1.0, 1.0, 0},
		{1.0, 0.5, 1},
		{1.0, 0.25, 2},
		{1.0, 0.125, 3},
	}
	for _, c := range cases {
		if got := calcDivideRounds(c.max, c.min); got != c.want {
			t.Errorf("calcDivideRounds(%v, %v) = %d, want %d", c.max, c.min, got, c.want)
		}
	}
}

type countingReporter struct {
	stages int
	stopAt int
}

func (r *countingReporter) Log(stage, detail string) { r.stages++ }
func (r *countingReporter) IsRunning() bool          { return r.stopAt == 0 || r.stages < r.stopAt }

func TestDriverRunCancelsEarly(t *testing.T) {
	reporter := &countingReporter{stopAt: 2}
	d := NewDriver(testParams(), nil, reporter)
	g, err := d.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g == nil {
		t.Fatalf("expected a partially built grid even when cancelled early")
	}
}
