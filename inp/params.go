// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads the mesher's input parameter record (§6), following
// gofem's inp package convention of a single JSON-backed record with a
// Read constructor and an explicit validation pass.
package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hexmesh/geom"
)

// Params is the mesher's input parameter record (§6).
type Params struct {
	MinEdgeLength float64 `json:"minEdgeLength"`
	MinGapSize    float64 `json:"minGapSize"`
	MaxEdgeLength float64 `json:"maxEdgeLength"`
	SharpAngleDeg float64 `json:"sharpAngleDeg"`
	BoundsMin     [3]float64 `json:"boundsMin"`
	BoundsMax     [3]float64 `json:"boundsMax"`
}

// ReadParams loads and validates a Params record from a JSON file at path,
// mirroring gofem's io.ReadFile + json.Unmarshal + chk.Err idiom for input
// parsing.
func ReadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read params file %q: %v", path, err)
	}
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, chk.Err("inp: cannot parse params file %q: %v", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the record for the parse errors described in §7: a
// non-positive or inverted edge-length range, a degenerate bounding box,
// or an out-of-range sharp angle.
func (p *Params) Validate() error {
	if p.MinEdgeLength <= 0 {
		return chk.Err("inp: minEdgeLength must be positive, got %v", p.MinEdgeLength)
	}
	if p.MaxEdgeLength < p.MinEdgeLength {
		return chk.Err("inp: maxEdgeLength (%v) must be >= minEdgeLength (%v)", p.MaxEdgeLength, p.MinEdgeLength)
	}
	if p.MinGapSize < 0 {
		return chk.Err("inp: minGapSize must be non-negative, got %v", p.MinGapSize)
	}
	if p.SharpAngleDeg <= 0 || p.SharpAngleDeg >= 180 {
		return chk.Err("inp: sharpAngleDeg must be in (0,180), got %v", p.SharpAngleDeg)
	}
	for i := 0; i < 3; i++ {
		if p.BoundsMax[i] <= p.BoundsMin[i] {
			return chk.Err("inp: boundsMax must exceed boundsMin on every axis, axis %d: [%v, %v]", i, p.BoundsMin[i], p.BoundsMax[i])
		}
	}
	return nil
}

// Bounds returns the parameter record's bounding box as geom types.
func (p *Params) Bounds() geom.BoundingBox {
	return geom.BoundingBox{
		Min: geom.NewVector3(p.BoundsMin[0], p.BoundsMin[1], p.BoundsMin[2]),
		Max: geom.NewVector3(p.BoundsMax[0], p.BoundsMax[1], p.BoundsMax[2]),
	}
}

// SinSharpAngle returns sin(sharpAngleDeg), the threshold find_sharp_edges
// is called with (§6).
func (p *Params) SinSharpAngle() float64 {
	return math.Sin(p.SharpAngleDeg * math.Pi / 180)
}
