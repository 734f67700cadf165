package physics

import (
	"testing"

	"sandbox2d/internal/vmath"
)

func testWorld() *World {
	w := NewWorld(vmath.New(1200, 800))
	w.Gravity = vmath.Vector2{}
	return w
}

func TestWorldAddAssignsIDs(t *testing.T) {
	w := testWorld()
	a := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	b := NewBody(NewCircle(10), vmath.New(300, 100), 1)
	w.AddBody(a)
	w.AddBody(b)

	if a.ID == 0 || b.ID == 0 {
		t.Fatal("Expected non-zero IDs after add")
	}
	if a.ID == b.ID {
		t.Errorf("Expected distinct IDs, both %d", a.ID)
	}
	if len(w.Bodies()) != 2 {
		t.Errorf("Expected 2 bodies, got %d", len(w.Bodies()))
	}

	// Re-adding is a no-op.
	w.AddBody(a)
	if len(w.Bodies()) != 2 {
		t.Errorf("Expected re-add no-op, got %d bodies", len(w.Bodies()))
	}
}

func TestWorldRemove(t *testing.T) {
	w := testWorld()
	a := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	b := NewBody(NewCircle(10), vmath.New(300, 100), 1)
	w.AddBody(a)
	w.AddBody(b)

	w.Select(b)
	w.RemoveBody(b)

	if len(w.Bodies()) != 1 || w.Bodies()[0] != a {
		t.Error("Expected only first body left")
	}
	if w.Selected() != nil {
		t.Error("Expected removal to clear selection")
	}

	// Removing an absent body is a silent no-op.
	w.RemoveBody(b)
	if len(w.Bodies()) != 1 {
		t.Error("Expected no-op remove")
	}
}

func TestWorldStepEmpty(t *testing.T) {
	w := testWorld()
	w.Step(1.0 / 120.0)

	c := w.Counters()
	if c.ChecksAttempted != 0 || c.Contacts != 0 || c.TrackedCells != 0 || c.TrackedNeighbors != 0 {
		t.Errorf("Expected zero counters on empty world, got %+v", c)
	}
}

func TestWorldCountersResetEachStep(t *testing.T) {
	w := testWorld()
	a := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	b := NewBody(NewCircle(10), vmath.New(110, 100), 1)
	w.AddBody(a)
	w.AddBody(b)

	w.Step(1.0 / 120.0)
	if w.Counters().Contacts != 1 {
		t.Fatalf("Expected 1 contact, got %d", w.Counters().Contacts)
	}

	w.RemoveBody(a)
	w.RemoveBody(b)
	w.Step(1.0 / 120.0)
	if w.Counters().ChecksAttempted != 0 || w.Counters().Contacts != 0 {
		t.Errorf("Expected counters reset, got %+v", w.Counters())
	}
}

func TestWorldMotionlessBodyStays(t *testing.T) {
	w := testWorld()
	b := NewBody(NewCircle(10), vmath.New(600, 400), 1)
	w.AddBody(b)

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 120.0)
	}

	if b.Position != vmath.New(600, 400) {
		t.Errorf("Expected motionless body to stay put, got (%v,%v)",
			b.Position.X, b.Position.Y)
	}
}

func TestWorldBruteForcePathResolves(t *testing.T) {
	w := testWorld()
	a := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	b := NewBody(NewCircle(10), vmath.New(115, 100), 1)
	a.Velocity = vmath.New(20, 0)
	b.Velocity = vmath.New(-20, 0)
	w.AddBody(a)
	w.AddBody(b)

	w.Step(1.0 / 120.0)

	if w.Counters().ChecksAttempted != 1 {
		t.Errorf("Expected 1 attempted check, got %d", w.Counters().ChecksAttempted)
	}
	if w.Counters().Contacts != 1 {
		t.Errorf("Expected 1 contact, got %d", w.Counters().Contacts)
	}
	if a.Velocity.X >= 0 || b.Velocity.X <= 0 {
		t.Errorf("Expected approach reversed, got %v and %v", a.Velocity.X, b.Velocity.X)
	}
}

func TestWorldPeriodicCheckCadence(t *testing.T) {
	w := testWorld()
	// Force the accelerated path with two bodies.
	w.BruteForceThreshold = 1
	a := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	b := NewBody(NewCircle(10), vmath.New(112, 100), 1)
	a.Static = true
	b.Static = true
	w.AddBody(a)
	w.AddBody(b)

	// No prediction fires for an isolated pair, so the contact only shows up
	// on the periodic frames.
	sawContact := false
	for i := 0; i < DefaultPeriodicCheckInterval; i++ {
		w.Step(1.0 / 120.0)
		if w.Frame()%DefaultPeriodicCheckInterval != 0 && w.Counters().Contacts != 0 {
			t.Errorf("Frame %d: expected no check off the periodic cadence", w.Frame())
		}
		if w.Counters().Contacts > 0 {
			sawContact = true
		}
	}
	if !sawContact {
		t.Error("Expected the periodic frame to detect the contact")
	}
	if w.Counters().TrackedCells == 0 {
		t.Error("Expected broad phase cells tracked on the accelerated path")
	}
}

func TestWorldBruteForceStepDropsPredictions(t *testing.T) {
	w := testWorld()
	w.BruteForceThreshold = 3

	// Dense converging cluster: every body clears the neighbor gate and the
	// middle pair closes well inside the lookahead window.
	var cluster []*Body
	for i := 0; i < 6; i++ {
		b := NewBody(NewCircle(5), vmath.New(float32(500+i*20), 400), 1)
		if i < 3 {
			b.Velocity = vmath.New(100, 0)
		} else {
			b.Velocity = vmath.New(-100, 0)
		}
		w.AddBody(b)
		cluster = append(cluster, b)
	}

	w.Step(1.0 / 120.0)
	if len(w.Predictions()) == 0 {
		t.Fatal("Expected the converging cluster to produce predictions")
	}

	// Dropping below the threshold switches the next step to brute force;
	// the old predictions must not outlive the removed bodies.
	for _, b := range cluster[1:] {
		w.RemoveBody(b)
	}
	w.Step(1.0 / 120.0)

	if preds := w.Predictions(); len(preds) != 0 {
		t.Errorf("Expected no predictions after removal on the brute force path, got %d", len(preds))
	}
}

func TestWorldPickInsertionOrder(t *testing.T) {
	w := testWorld()
	first := NewBody(NewCircle(20), vmath.New(200, 200), 1)
	second := NewBody(NewCircle(20), vmath.New(205, 200), 1)
	w.AddBody(first)
	w.AddBody(second)

	if got := w.PickBody(vmath.New(205, 200)); got != first {
		t.Error("Expected oldest overlapping body to win the pick")
	}
	if got := w.PickBody(vmath.New(600, 600)); got != nil {
		t.Error("Expected nil pick on empty space")
	}
}

func TestWorldDragThrow(t *testing.T) {
	w := testWorld()
	clock := 0.0
	w.SetClock(func() float64 { return clock })

	b := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	w.AddBody(b)

	if got := w.BeginDrag(vmath.New(100, 100)); got != b {
		t.Fatal("Expected drag to grab the body")
	}
	clock = 0.1
	w.UpdateDrag(vmath.New(110, 100))
	w.EndDrag()

	if b.Dragging {
		t.Error("Expected drag ended")
	}
	if !approxEq(b.Velocity.X, 100, 1e-2) || !approxEq(b.Velocity.Y, 0, 1e-2) {
		t.Errorf("Expected throw velocity (100,0), got (%v,%v)", b.Velocity.X, b.Velocity.Y)
	}
	if b.Position != vmath.New(110, 100) {
		t.Errorf("Expected body moved with pointer, got (%v,%v)", b.Position.X, b.Position.Y)
	}
}

func TestWorldDraggedBodySkipsIntegration(t *testing.T) {
	w := testWorld()
	w.Gravity = vmath.New(0, 981)
	clock := 0.0
	w.SetClock(func() float64 { return clock })

	b := NewBody(NewCircle(10), vmath.New(400, 100), 1)
	w.AddBody(b)
	w.BeginDrag(vmath.New(400, 100))

	for i := 0; i < 20; i++ {
		w.Step(1.0 / 120.0)
	}

	if b.Position != vmath.New(400, 100) {
		t.Errorf("Expected dragged body pinned, got (%v,%v)", b.Position.X, b.Position.Y)
	}
}

func TestWorldClear(t *testing.T) {
	w := testWorld()
	b := NewBody(NewCircle(10), vmath.New(100, 100), 1)
	w.AddBody(b)
	w.Select(b)

	w.Clear()

	if len(w.Bodies()) != 0 {
		t.Error("Expected no bodies after clear")
	}
	if w.Selected() != nil {
		t.Error("Expected selection cleared")
	}
	w.Step(1.0 / 120.0)
	if w.Counters() != (Counters{}) {
		t.Errorf("Expected zero counters after clear, got %+v", w.Counters())
	}
}

func TestWorldParallelMatchesSerial(t *testing.T) {
	run := func(workers int) []vmath.Vector2 {
		w := testWorld()
		w.Gravity = vmath.New(0, 981)
		w.SetWorkers(workers)
		for _, b := range randomBodies(300, w.Bounds(), 99) {
			body := NewBody(b.Shape, b.Position, 1)
			w.AddBody(body)
		}
		for i := 0; i < 5; i++ {
			w.Step(1.0 / 120.0)
		}
		out := make([]vmath.Vector2, len(w.Bodies()))
		for i, b := range w.Bodies() {
			out[i] = b.Position
		}
		return out
	}

	serial := run(1)
	parallel := run(4)
	if len(serial) != len(parallel) {
		t.Fatalf("Expected equal body counts, got %d and %d", len(serial), len(parallel))
	}
	for i := range serial {
		if !approxEq(serial[i].X, parallel[i].X, 1e-3) || !approxEq(serial[i].Y, parallel[i].Y, 1e-3) {
			t.Fatalf("Body %d diverged: serial (%v,%v), parallel (%v,%v)",
				i, serial[i].X, serial[i].Y, parallel[i].X, parallel[i].Y)
		}
	}
}
