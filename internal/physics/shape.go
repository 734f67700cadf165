package physics

import (
	"github.com/chewxy/math32"

	"sandbox2d/internal/vmath"
)

// ShapeKind enumerates the three supported convex primitives. Narrow-phase
// tests and bounding computations switch exhaustively over this tag; there is
// no open-ended dispatch.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindRect
	KindTriangle
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindTriangle:
		return "triangle"
	}
	return "unknown"
}

// minShapeSize is the smallest accepted size parameter. Non-positive sizes
// are a caller contract violation; they are clamped here instead of failing
// so the simulation keeps running.
const minShapeSize = 0.01

// Shape is a closed tagged variant over the three primitive kinds. Circle
// uses Radius, Rect uses Width/Height, Triangle (equilateral) uses Side.
type Shape struct {
	Kind   ShapeKind
	Radius float32
	Width  float32
	Height float32
	Side   float32
}

func NewCircle(radius float32) Shape {
	return Shape{Kind: KindCircle, Radius: max32(radius, minShapeSize)}
}

func NewRect(width, height float32) Shape {
	return Shape{
		Kind:   KindRect,
		Width:  max32(width, minShapeSize),
		Height: max32(height, minShapeSize),
	}
}

func NewTriangle(side float32) Shape {
	return Shape{Kind: KindTriangle, Side: max32(side, minShapeSize)}
}

// BoundingBox computes the exact AABB around the shape at the given center.
func (s Shape) BoundingBox(center vmath.Vector2) AABB {
	switch s.Kind {
	case KindCircle:
		return NewAABBFromCenter(center, s.Radius*2, s.Radius*2)
	case KindRect:
		return NewAABBFromCenter(center, s.Width, s.Height)
	case KindTriangle:
		// Centroid sits a third of the height above the base.
		h := s.Side * math32.Sqrt(3) / 2
		return AABB{
			Min: center.Sub(vmath.Vector2{X: s.Side / 2, Y: h / 3}),
			Max: center.Add(vmath.Vector2{X: s.Side / 2, Y: h * 2 / 3}),
		}
	}
	return AABB{Min: center, Max: center}
}

// BoundingRadius returns the radius of the smallest enclosing circle
// (approximate for the triangle).
func (s Shape) BoundingRadius() float32 {
	switch s.Kind {
	case KindCircle:
		return s.Radius
	case KindRect:
		return math32.Sqrt(s.Width*s.Width+s.Height*s.Height) * 0.5
	case KindTriangle:
		// Circumradius of an equilateral triangle is side/sqrt(3).
		return s.Side * 0.577
	}
	return 0
}

// TriangleVertices returns the three corners at the given centroid in
// top, bottom-left, bottom-right order.
func (s Shape) TriangleVertices(center vmath.Vector2) [3]vmath.Vector2 {
	h := s.Side * math32.Sqrt(3) / 2
	return [3]vmath.Vector2{
		center.Add(vmath.Vector2{X: 0, Y: h * 2 / 3}),
		center.Add(vmath.Vector2{X: -s.Side / 2, Y: -h / 3}),
		center.Add(vmath.Vector2{X: s.Side / 2, Y: -h / 3}),
	}
}

// ContainsPoint reports whether the point lies inside the shape placed at
// the given center.
func (s Shape) ContainsPoint(center, point vmath.Vector2) bool {
	switch s.Kind {
	case KindCircle:
		return point.DistanceSq(center) <= s.Radius*s.Radius
	case KindRect:
		return s.BoundingBox(center).Contains(point)
	case KindTriangle:
		v := s.TriangleVertices(center)
		return pointInTriangle(point, v[0], v[1], v[2])
	}
	return false
}

// pointInTriangle tests containment with barycentric coordinates.
func pointInTriangle(p, a, b, c vmath.Vector2) bool {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return u >= 0 && v >= 0 && u+v <= 1
}
