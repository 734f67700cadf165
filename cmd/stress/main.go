// Stress test comparing broad-phase strategies against the O(n²) baseline.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"sandbox2d/internal/physics"
	"sandbox2d/internal/vmath"
)

var testCounts = []int{100, 500, 1000, 2000, 5000, 10000}

func main() {
	for _, count := range testCounts {
		testBroadPhase(count)
	}
}

func testBroadPhase(count int) {
	// Spawn area scales with count to keep density roughly constant.
	side := float32(800) + float32(count)/4
	bounds := vmath.New(side, side)

	rng := rand.New(rand.NewSource(42))
	bodies := make([]*physics.Body, count)
	for i := range bodies {
		pos := vmath.New(rng.Float32()*bounds.X, rng.Float32()*bounds.Y)
		b := physics.NewBody(physics.NewCircle(5+rng.Float32()*10), pos, 1)
		b.ID = uint64(i + 1)
		bodies[i] = b
	}

	baseStart := time.Now()
	const iterations = 10
	var basePairs int
	for i := 0; i < iterations; i++ {
		basePairs = len(physics.BruteForcePairs(bodies))
	}
	baseTime := time.Since(baseStart) / iterations

	fmt.Printf("%6d bodies | brute force %8v (%d pairs)\n", count, baseTime, basePairs)

	strategies := []struct {
		name string
		bp   physics.BroadPhase
	}{
		{"grid", physics.NewGridBroadPhase(100)},
		{"adaptive", physics.NewAdaptiveGridBroadPhase(bounds)},
		{"quadtree", physics.NewQuadtreeBroadPhase(bounds)},
		{"sweep", physics.NewSweepBroadPhase()},
	}

	for _, s := range strategies {
		start := time.Now()
		var pairs int
		for i := 0; i < iterations; i++ {
			s.bp.Rebuild(bodies)
			pairs = len(s.bp.Pairs())
		}
		elapsed := time.Since(start) / iterations

		speedup := float64(baseTime) / float64(elapsed)
		note := ""
		// Grid and sweep guarantee the exact brute-force pair set; the
		// approximate strategies only report their delta.
		if pairs != basePairs {
			if s.name == "grid" || s.name == "sweep" {
				note = "  PAIR SET MISMATCH"
			} else {
				note = fmt.Sprintf("  (missed %d)", basePairs-pairs)
			}
		}
		fmt.Printf("       %-10s %8v (%d pairs, %d cells, %.1fx)%s\n",
			s.name, elapsed, pairs, s.bp.CellCount(), speedup, note)
	}
	fmt.Println()
}
