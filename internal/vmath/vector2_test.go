package vmath

import "testing"

func TestVectorOps(t *testing.T) {
	v := New(3, 4)

	if got := v.Length(); got != 5 {
		t.Errorf("Expected length 5, got %v", got)
	}
	if got := v.Add(New(1, 1)); got != New(4, 5) {
		t.Errorf("Expected (4,5), got (%v,%v)", got.X, got.Y)
	}
	if got := v.Sub(New(3, 4)); got != (Vector2{}) {
		t.Errorf("Expected zero vector, got (%v,%v)", got.X, got.Y)
	}
	if got := v.Scale(2); got != New(6, 8) {
		t.Errorf("Expected (6,8), got (%v,%v)", got.X, got.Y)
	}
	if got := v.Dot(New(2, 1)); got != 10 {
		t.Errorf("Expected dot 10, got %v", got)
	}
	if got := New(0, 0).Distance(v); got != 5 {
		t.Errorf("Expected distance 5, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	n := New(0, 10).Normalize()
	if n != New(0, 1) {
		t.Errorf("Expected (0,1), got (%v,%v)", n.X, n.Y)
	}
	if z := (Vector2{}).Normalize(); z != (Vector2{}) {
		t.Errorf("Expected zero vector normalized to zero, got (%v,%v)", z.X, z.Y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
}
