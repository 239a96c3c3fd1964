// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command viewer runs the mesh-generation pipeline over a params file and
// writes the resulting grid to disk (§6's "viewer <params>").
//
// The triangle-mesh library that parses an STL into surface.Model
// instances is outside this repository's scope (§1); this command runs
// with an empty model set, so stage 3 and stage 5 do no cusp-snapping or
// polyline fitting, and only the lattice/boundary-clamp/divide stages
// exercise the mesh. A deployment wiring a real STL loader would pass its
// surface.Model values to pipeline.NewDriver instead.
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/hexmesh/grid"
	"github.com/cpmech/hexmesh/inp"
	"github.com/cpmech/hexmesh/pipeline"
	"github.com/cpmech/hexmesh/surface"
)

// consoleReporter logs every stage to stdout and never cancels a run.
type consoleReporter struct{ verbose bool }

func (r consoleReporter) Log(stage, detail string) {
	if r.verbose {
		io.Pf("  %-10s %s\n", stage, detail)
	}
}

func (consoleReporter) IsRunning() bool { return true }

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()
	defer utl.DoProf(false)()

	paramsPath, _ := io.ArgToFilename(0, "", ".json", true)
	outPath := io.ArgToString(1, "mesh.txt")
	verbose := io.ArgToBool(2, true)

	if verbose {
		io.PfWhite("\nhexmesh -- spring-energy hexahedral mesh generator\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"input parameters", "paramsPath", paramsPath,
			"output grid file", "outPath", outPath,
			"show messages", "verbose", verbose,
		))
	}

	params, err := inp.ReadParams(paramsPath)
	if err != nil {
		chk.Panic("%v", err)
	}

	var models []surface.Model
	driver := pipeline.NewDriver(params, models, consoleReporter{verbose: verbose})

	g, err := driver.Run()
	if err != nil {
		chk.Panic("pipeline run failed: %v", err)
	}
	if err := saveGrid(g, outPath); err != nil {
		chk.Panic("%v", err)
	}

	if verbose {
		io.Pf("\nfile <%s> written\n", outPath)
	}
}

func saveGrid(g *grid.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("viewer: cannot create output file %q: %v", path, err)
	}
	defer f.Close()
	return g.Save(f)
}
