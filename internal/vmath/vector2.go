package vmath

import "github.com/chewxy/math32"

// Vector2 is a 2D float32 vector. The physics package uses it for positions,
// velocities and contact normals.
type Vector2 struct {
	X, Y float32
}

func New(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(f float32) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, or the zero vector when the length is zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	inv := 1.0 / l
	return Vector2{X: v.X * inv, Y: v.Y * inv}
}

func (v Vector2) Distance(o Vector2) float32 {
	return v.Sub(o).Length()
}

func (v Vector2) DistanceSq(o Vector2) float32 {
	return v.Sub(o).LengthSq()
}

// Clamp restricts a value to a range.
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
