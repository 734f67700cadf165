package physics

import "sandbox2d/internal/vmath"

type AABB struct {
	Min vmath.Vector2
	Max vmath.Vector2
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center vmath.Vector2, width, height float32) AABB {
	half := vmath.Vector2{X: width / 2, Y: height / 2}
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func (a AABB) Contains(p vmath.Vector2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

func (a AABB) Center() vmath.Vector2 {
	return vmath.Vector2{
		X: (a.Min.X + a.Max.X) * 0.5,
		Y: (a.Min.Y + a.Max.Y) * 0.5,
	}
}

func (a AABB) Area() float32 {
	return (a.Max.X - a.Min.X) * (a.Max.Y - a.Min.Y)
}

// Overlap returns the per-axis overlap amounts with b. Both values are
// positive only when the boxes actually intersect.
func (a AABB) Overlap(b AABB) (x, y float32) {
	x = min32(a.Max.X, b.Max.X) - max32(a.Min.X, b.Min.X)
	y = min32(a.Max.Y, b.Max.Y) - max32(a.Min.Y, b.Min.Y)
	return x, y
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
