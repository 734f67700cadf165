package physics

import (
	"log"
	"sort"
	"time"

	"sandbox2d/internal/vmath"
)

// Default step policy. All of these are explicit knobs on the World; the
// defaults match the sandbox tuning.
const (
	// DefaultBruteForceThreshold is the body count below which the broad
	// phase is skipped entirely: at small scale the structure overhead
	// outweighs the saved tests.
	DefaultBruteForceThreshold = 200
	// DefaultNeighborInterval is how many frames pass between neighbor
	// cache rebuilds (the O(n²) path feeding prediction).
	DefaultNeighborInterval = 10
	// DefaultPeriodicCheckInterval: candidate pairs without a collision
	// prediction are still narrow-phase tested every this many frames, so
	// prediction only reorders work, it never hides a pair forever.
	DefaultPeriodicCheckInterval = 5
	// DefaultBroadPhaseInterval rebuilds the broad phase every frame.
	DefaultBroadPhaseInterval = 1

	defaultNeighborDistance = 100
	defaultGridCellSize     = 100
)

// Counters are the per-step performance numbers. They reset at step start
// and accumulate only during detection.
type Counters struct {
	ChecksAttempted  int
	Contacts         int
	TrackedCells     int
	TrackedNeighbors int
}

var processStart = time.Now()

// World owns the body collection (insertion order preserved, no duplicates)
// and orchestrates the fixed per-step order: integrate, boundary-correct,
// rebuild acceleration structures, predict, detect and resolve. Every
// acceleration structure holds non-owning references and is rebuilt on its
// cadence; a removal marks them dirty so nothing stale survives into the
// next step.
type World struct {
	Gravity vmath.Vector2

	BruteForceThreshold   int
	BroadPhaseInterval    int
	NeighborInterval      int
	PeriodicCheckInterval int

	bounds vmath.Vector2
	bodies []*Body
	nextID uint64

	broadPhase    BroadPhase
	neighborCache *NeighborCache
	preds         []CollisionPrediction
	predIndex     map[[2]uint64]bool

	frame           int
	counters        Counters
	structuresDirty bool
	accelerated     bool

	selected *Body
	now      func() float64

	workers int
}

// NewWorld creates a world with the given bounds (origin at the top-left,
// Y down, matching screen coordinates) and downward gravity.
func NewWorld(bounds vmath.Vector2) *World {
	w := &World{
		Gravity:               vmath.Vector2{X: 0, Y: 981},
		BruteForceThreshold:   DefaultBruteForceThreshold,
		BroadPhaseInterval:    DefaultBroadPhaseInterval,
		NeighborInterval:      DefaultNeighborInterval,
		PeriodicCheckInterval: DefaultPeriodicCheckInterval,
		bounds:                bounds,
		broadPhase:            NewGridBroadPhase(defaultGridCellSize),
		neighborCache:         NewNeighborCache(defaultNeighborDistance),
		now:                   func() float64 { return time.Since(processStart).Seconds() },
	}
	return w
}

// AddBody inserts the body and assigns its identity. Re-adding a body that
// is already in the world is a no-op.
func (w *World) AddBody(b *Body) {
	if b == nil {
		return
	}
	if b.ID != 0 {
		for _, existing := range w.bodies {
			if existing.ID == b.ID {
				return
			}
		}
	}
	w.nextID++
	b.ID = w.nextID
	w.bodies = append(w.bodies, b)
	w.structuresDirty = true
}

// RemoveBody removes by identity. Absent bodies are a silent no-op. Removal
// also clears any selection or drag state referring to the body, and marks
// the acceleration structures dirty so no stale reference is enumerated.
func (w *World) RemoveBody(b *Body) {
	for i, existing := range w.bodies {
		if existing == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			if w.selected == b {
				w.selected = nil
			}
			w.structuresDirty = true
			return
		}
	}
}

// Clear removes every body and resets selection and caches.
func (w *World) Clear() {
	w.bodies = nil
	w.selected = nil
	w.preds = nil
	w.predIndex = nil
	w.neighborCache.Clear()
	w.structuresDirty = true
}

// Bodies returns the live body slice in insertion order. The slice is stable
// until the next add/remove/clear; callers render from it directly.
func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) Bounds() vmath.Vector2 {
	return w.bounds
}

// SetBounds resizes the world (e.g. on a window resize) and propagates the
// new extents to bounds-aware strategies.
func (w *World) SetBounds(bounds vmath.Vector2) {
	w.bounds = bounds
	if aware, ok := w.broadPhase.(interface{ SetWorldBounds(vmath.Vector2) }); ok {
		aware.SetWorldBounds(bounds)
	}
	w.structuresDirty = true
}

// SetBroadPhase swaps the acceleration strategy. The grid is the default;
// adaptive grid, quadtree and sweep are interchangeable behind the same
// capability.
func (w *World) SetBroadPhase(bp BroadPhase) {
	if bp == nil {
		return
	}
	w.broadPhase = bp
	w.structuresDirty = true
}

// BroadPhaseStrategy returns the current strategy (for overlays and tests).
func (w *World) BroadPhaseStrategy() BroadPhase {
	return w.broadPhase
}

// SetWorkers enables parallel integration and narrow-phase detection across
// n goroutines. Resolution stays single-threaded regardless: two goroutines
// resolving pairs that share a body would race.
func (w *World) SetWorkers(n int) {
	w.workers = n
}

// SetClock overrides the drag timestamp source.
func (w *World) SetClock(now func() float64) {
	if now != nil {
		w.now = now
	}
}

// Counters returns the performance numbers accumulated by the last step.
func (w *World) Counters() Counters {
	return w.counters
}

// Frame returns the simulation frame counter.
func (w *World) Frame() int {
	return w.frame
}

// Step advances the simulation by exactly dt seconds.
func (w *World) Step(dt float32) {
	w.frame++
	w.counters = Counters{}

	// 1. Integrate forces.
	w.integrate(dt)

	// 2. Boundary correction.
	for _, b := range w.bodies {
		correctBoundary(b, w.bounds)
	}

	accelerated := len(w.bodies) >= w.BruteForceThreshold
	if accelerated != w.accelerated {
		w.accelerated = accelerated
		if accelerated {
			log.Printf("physics: broad phase ON (%d bodies)", len(w.bodies))
		} else {
			log.Printf("physics: broad phase OFF (%d bodies)", len(w.bodies))
		}
	}

	if !accelerated {
		// Small worlds: full pairwise testing beats structure upkeep.
		// Predictions are only rebuilt on the accelerated path; drop the
		// previous batch so no stale body reference survives here.
		w.preds = nil
		w.predIndex = nil
		w.detectBruteForce()
		return
	}

	// 3. Rebuild acceleration structures on their cadence.
	if w.structuresDirty || w.frame%w.BroadPhaseInterval == 0 {
		w.broadPhase.Rebuild(w.bodies)
	}
	if w.structuresDirty || w.frame%w.NeighborInterval == 0 {
		w.neighborCache.Rebuild(w.bodies, w.frame)
	}
	w.structuresDirty = false

	// 4. Predict likely impacts from the neighbor cache.
	w.preds = predictions(w.neighborCache)
	w.predIndex = make(map[[2]uint64]bool, len(w.preds))
	for _, p := range w.preds {
		w.predIndex[makePair(p.A, p.B).key()] = true
	}

	w.counters.TrackedCells = w.broadPhase.CellCount()
	w.counters.TrackedNeighbors = w.neighborCache.TrackedCount()

	// 5. Detect and resolve candidate pairs. Predicted pairs are tested
	// immediately; the rest only on the periodic frames.
	periodic := w.frame%w.PeriodicCheckInterval == 0
	pairs := w.broadPhase.Pairs()

	var due []Pair
	for _, p := range pairs {
		if periodic || w.predIndex[p.key()] {
			due = append(due, p)
		}
	}
	// Map-backed strategies enumerate in arbitrary order; sorting keeps the
	// resolve order, and therefore the simulation, deterministic.
	sort.Slice(due, func(i, j int) bool {
		if due[i].A.ID != due[j].A.ID {
			return due[i].A.ID < due[j].A.ID
		}
		return due[i].B.ID < due[j].B.ID
	})

	contacts := w.detectPairs(due)
	for _, c := range contacts {
		ResolveContact(c)
	}
}

// detectBruteForce narrow-phase tests every pair directly.
func (w *World) detectBruteForce() {
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			w.counters.ChecksAttempted++
			if c, ok := DetectContact(w.bodies[i], w.bodies[j]); ok {
				w.counters.Contacts++
				ResolveContact(c)
			}
		}
	}
}

// Predictions returns the pairs flagged by the last step's predictor.
func (w *World) Predictions() []CollisionPrediction {
	return w.preds
}
