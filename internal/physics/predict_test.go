package physics

import (
	"testing"

	"sandbox2d/internal/vmath"
)

func TestPredictCollisionTimeApproaching(t *testing.T) {
	a := NewBody(NewCircle(1), vmath.New(0, 0), 1)
	b := NewBody(NewCircle(1), vmath.New(12, 0), 1)
	a.Velocity = vmath.New(10, 0)

	// Gap of 10 closing at 10 units/s.
	if got := PredictCollisionTime(a, b); !approxEq(got, 1.0, 1e-4) {
		t.Errorf("Expected impact at t=1.0, got %v", got)
	}
}

func TestPredictCollisionTimeReceding(t *testing.T) {
	a := NewBody(NewCircle(1), vmath.New(0, 0), 1)
	b := NewBody(NewCircle(1), vmath.New(12, 0), 1)
	a.Velocity = vmath.New(-10, 0)

	if got := PredictCollisionTime(a, b); got >= 0 {
		t.Errorf("Expected no impact for receding bodies, got %v", got)
	}
}

func TestPredictCollisionTimeStationary(t *testing.T) {
	a := NewBody(NewCircle(5), vmath.New(0, 0), 1)
	b := NewBody(NewCircle(5), vmath.New(8, 0), 1)

	// Already overlapping with no relative motion: immediate.
	if got := PredictCollisionTime(a, b); got != 0 {
		t.Errorf("Expected t=0 for overlapping stationary pair, got %v", got)
	}

	far := NewBody(NewCircle(5), vmath.New(100, 0), 1)
	if got := PredictCollisionTime(a, far); got >= 0 {
		t.Errorf("Expected no impact for separated stationary pair, got %v", got)
	}
}

func TestPredictionsRequireDenseNeighborhood(t *testing.T) {
	cache := NewNeighborCache(100)

	// Two bodies within range: below the neighbor gate, no predictions even
	// though they approach each other.
	a := NewBody(NewCircle(5), vmath.New(0, 0), 1)
	a.ID = 1
	a.Velocity = vmath.New(50, 0)
	b := NewBody(NewCircle(5), vmath.New(11, 0), 1)
	b.ID = 2
	cache.Rebuild([]*Body{a, b}, 1)

	if preds := predictions(cache); len(preds) != 0 {
		t.Fatalf("Expected no predictions below the neighbor gate, got %d", len(preds))
	}

	// A cluster of five puts every member over the gate.
	cluster := []*Body{a, b}
	for i := 0; i < 3; i++ {
		c := NewBody(NewCircle(5), vmath.New(float32(20+i*10), 5), 1)
		c.ID = uint64(3 + i)
		cluster = append(cluster, c)
	}
	cache.Rebuild(cluster, 2)

	preds := predictions(cache)
	if len(preds) == 0 {
		t.Fatal("Expected predictions in a dense cluster")
	}
	for _, p := range preds {
		if !p.WillCollide {
			t.Error("Expected flagged predictions to carry WillCollide")
		}
		if p.PredictedTime < 0 || p.PredictedTime > predictLookahead {
			t.Errorf("Expected predicted time within lookahead, got %v", p.PredictedTime)
		}
	}
}
