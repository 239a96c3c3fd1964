// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "sync"

// RelaxPass runs one parallel optimisation pass over every vertex in g,
// following the three-phase barrier of §5:
//
//  1. Seed (single-threaded): every vertex copies slot 0 into every
//     worker scratch slot.
//  2. Work (numWorkers goroutines): vertices are partitioned round-robin
//     by index; each worker calls optimizeVertex on its share, reading
//     and writing only its own slot. No goroutine touches slot 0.
//  3. Commit (single-threaded): for every vertex whose scratch clamp
//     still matches its slot-0 clamp, the scratch slot is copied back to
//     slot 0, bumping the vertex's change counter when that changes its
//     position or clamp.
//
// optimizeVertex is handed the vertex and the scratch slot (1..numWorkers)
// it must confine itself to; it is the caller's (pipeline's) job to wire
// it to the energy model and the steepest-descent optimiser, since grid
// cannot import energy without a cycle.
func (g *Grid) RelaxPass(numWorkers int, optimizeVertex func(v *Vertex, slot int)) {
	if numWorkers <= 0 {
		numWorkers = NumWorkers
	}
	if numWorkers > NumWorkers {
		numWorkers = NumWorkers
	}

	for _, v := range g.verts {
		v.CopyToSlots()
	}

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			slot := workerID + 1
			for idx := workerID; idx < len(g.verts); idx += numWorkers {
				optimizeVertex(g.verts[idx], slot)
			}
		}(worker)
	}
	wg.Wait()

	for idx, v := range g.verts {
		slot := idx%numWorkers + 1
		if v.clamp[slot] == v.clamp[0] {
			v.CommitSlot(slot)
		}
	}
}
