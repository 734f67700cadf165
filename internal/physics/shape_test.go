package physics

import (
	"testing"

	"sandbox2d/internal/vmath"
)

func TestShapeMinimumSize(t *testing.T) {
	if c := NewCircle(-5); c.Radius != minShapeSize {
		t.Errorf("Expected radius clamped to %v, got %v", minShapeSize, c.Radius)
	}
	if r := NewRect(0, 10); r.Width != minShapeSize {
		t.Errorf("Expected width clamped to %v, got %v", minShapeSize, r.Width)
	}
	if tr := NewTriangle(-1); tr.Side != minShapeSize {
		t.Errorf("Expected side clamped to %v, got %v", minShapeSize, tr.Side)
	}
}

func TestCircleContainsPoint(t *testing.T) {
	s := NewCircle(10)
	center := vmath.New(100, 100)

	if !s.ContainsPoint(center, vmath.New(105, 100)) {
		t.Error("Expected interior point inside")
	}
	if s.ContainsPoint(center, vmath.New(115, 100)) {
		t.Error("Expected exterior point outside")
	}
}

func TestRectContainsPoint(t *testing.T) {
	s := NewRect(20, 10)
	center := vmath.New(0, 0)

	if !s.ContainsPoint(center, vmath.New(9, 4)) {
		t.Error("Expected interior point inside")
	}
	if s.ContainsPoint(center, vmath.New(11, 0)) {
		t.Error("Expected point past half-width outside")
	}
}

func TestTriangleContainsPoint(t *testing.T) {
	s := NewTriangle(30)
	center := vmath.New(0, 0)

	if !s.ContainsPoint(center, center) {
		t.Error("Expected centroid inside")
	}
	v := s.TriangleVertices(center)
	outside := vmath.New(v[1].X-1, v[1].Y)
	if s.ContainsPoint(center, outside) {
		t.Error("Expected point past a vertex outside")
	}
}

func TestTriangleBoundingBox(t *testing.T) {
	s := NewTriangle(30)
	box := s.BoundingBox(vmath.New(0, 0))

	if !approxEq(box.Min.X, -15, 1e-4) || !approxEq(box.Max.X, 15, 1e-4) {
		t.Errorf("Expected x span [-15,15], got [%v,%v]", box.Min.X, box.Max.X)
	}
	// Centroid splits the height 1/3 below, 2/3 above.
	h := float32(30) * 0.8660254
	if !approxEq(box.Min.Y, -h/3, 1e-3) || !approxEq(box.Max.Y, h*2/3, 1e-3) {
		t.Errorf("Expected y span [%v,%v], got [%v,%v]", -h/3, h*2/3, box.Min.Y, box.Max.Y)
	}
}

func TestBoundingRadius(t *testing.T) {
	if r := NewCircle(10).BoundingRadius(); r != 10 {
		t.Errorf("Expected circle bounding radius 10, got %v", r)
	}
	if r := NewRect(6, 8).BoundingRadius(); !approxEq(r, 5, 1e-4) {
		t.Errorf("Expected rect half-diagonal 5, got %v", r)
	}
	if r := NewTriangle(10).BoundingRadius(); !approxEq(r, 5.77, 1e-2) {
		t.Errorf("Expected triangle circumradius 5.77, got %v", r)
	}
}

func TestShapeKindString(t *testing.T) {
	cases := map[ShapeKind]string{
		KindCircle:   "circle",
		KindRect:     "rect",
		KindTriangle: "triangle",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
