package physics

import "sandbox2d/internal/vmath"

// degenerateEps is the separation below which a contact normal cannot be
// normalized reliably. The fallback is a fixed (1,0) normal with full
// penetration, so near-coincident bodies separate instead of faulting.
const degenerateEps = 0.001

// Contact is a narrow-phase result. Normal is a unit vector pointing from A
// to B; Penetration is the positive overlap depth along it.
type Contact struct {
	A, B        *Body
	Normal      vmath.Vector2
	Penetration float32
}

// DetectContact runs the exact pairwise test for the two bodies. The second
// return value is false when the shapes do not overlap. The case analysis is
// finite: circle-circle, rect-rect, circle-rect, and any pair involving a
// triangle, which is tested by AABB overlap only.
func DetectContact(a, b *Body) (Contact, bool) {
	switch {
	case a.Shape.Kind == KindCircle && b.Shape.Kind == KindCircle:
		return circleCircle(a, b)
	case a.Shape.Kind == KindCircle && b.Shape.Kind == KindRect:
		return circleRect(a, b)
	case a.Shape.Kind == KindRect && b.Shape.Kind == KindCircle:
		c, ok := circleRect(b, a)
		if ok {
			c.A, c.B = a, b
			c.Normal = c.Normal.Scale(-1)
		}
		return c, ok
	default:
		// rect-rect and every triangle pairing.
		return boxOverlap(a, b)
	}
}

func circleCircle(a, b *Body) (Contact, bool) {
	diff := b.Position.Sub(a.Position)
	dist := diff.Length()
	radiusSum := a.Shape.Radius + b.Shape.Radius

	if dist >= radiusSum {
		return Contact{}, false
	}

	c := Contact{A: a, B: b}
	if dist < degenerateEps {
		c.Normal = vmath.Vector2{X: 1, Y: 0}
		c.Penetration = radiusSum
	} else {
		c.Normal = diff.Scale(1 / dist)
		c.Penetration = radiusSum - dist
	}
	return c, true
}

// circleRect clamps the circle center into the rectangle extents to find the
// closest point. circle must be the circle body.
func circleRect(circle, rect *Body) (Contact, bool) {
	box := rect.Bounds()
	closest := vmath.Vector2{
		X: vmath.Clamp(circle.Position.X, box.Min.X, box.Max.X),
		Y: vmath.Clamp(circle.Position.Y, box.Min.Y, box.Max.Y),
	}

	diff := closest.Sub(circle.Position)
	dist := diff.Length()
	if dist >= circle.Shape.Radius {
		return Contact{}, false
	}

	c := Contact{A: circle, B: rect}
	if dist < degenerateEps {
		// Center on (or inside) the rectangle boundary.
		c.Normal = vmath.Vector2{X: 1, Y: 0}
		c.Penetration = circle.Shape.Radius
	} else {
		c.Normal = diff.Scale(1 / dist)
		c.Penetration = circle.Shape.Radius - dist
	}
	return c, true
}

// boxOverlap resolves by AABB overlap on the separating axis of minimum
// penetration. The normal points from a toward b along that axis.
func boxOverlap(a, b *Body) (Contact, bool) {
	boxA := a.Bounds()
	boxB := b.Bounds()

	overlapX, overlapY := boxA.Overlap(boxB)
	if overlapX <= 0 || overlapY <= 0 {
		return Contact{}, false
	}

	c := Contact{A: a, B: b}
	if overlapX < overlapY {
		c.Penetration = overlapX
		if boxA.Max.X < boxB.Max.X {
			c.Normal = vmath.Vector2{X: 1, Y: 0}
		} else {
			c.Normal = vmath.Vector2{X: -1, Y: 0}
		}
	} else {
		c.Penetration = overlapY
		if boxA.Max.Y < boxB.Max.Y {
			c.Normal = vmath.Vector2{X: 0, Y: 1}
		} else {
			c.Normal = vmath.Vector2{X: 0, Y: -1}
		}
	}
	return c, true
}
