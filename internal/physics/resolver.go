package physics

import "sandbox2d/internal/vmath"

// Positional correction constants. Slop lets minor resting overlap persist so
// the resolver does not jitter resting contacts; the fraction resolves the
// remaining penetration gradually.
const (
	correctionSlop     = 0.05
	correctionFraction = 0.2
)

// ResolveContact applies an impulse along the contact normal and a positional
// correction. Static bodies contribute zero inverse mass and never receive
// velocity or position writes; a pair of statics is a guarded no-op.
func ResolveContact(c Contact) {
	a, b := c.A, c.B
	if a.Static && b.Static {
		return
	}

	var invMassA, invMassB float32
	if !a.Static {
		invMassA = 1 / a.Mass
	}
	if !b.Static {
		invMassB = 1 / b.Mass
	}

	relVel := b.Velocity.Sub(a.Velocity)
	velAlongNormal := relVel.Dot(c.Normal)

	// Impulse only when the bodies approach; separating contacts still get
	// positional correction below.
	if velAlongNormal < 0 && invMassA+invMassB > 0 {
		e := min32(a.Restitution, b.Restitution)
		j := -(1 + e) * velAlongNormal / (invMassA + invMassB)

		impulse := c.Normal.Scale(j)
		if !a.Static {
			a.Velocity = a.Velocity.Sub(impulse.Scale(invMassA))
		}
		if !b.Static {
			b.Velocity = b.Velocity.Add(impulse.Scale(invMassB))
		}
	}

	correctPositions(c)
}

// correctPositions displaces each non-static body opposite along the normal,
// proportional to the other body's mass share.
func correctPositions(c Contact) {
	pen := c.Penetration - correctionSlop
	if pen <= 0 {
		return
	}

	a, b := c.A, c.B
	totalMass := a.Mass + b.Mass
	if totalMass == 0 {
		return
	}

	correction := c.Normal.Scale(pen / totalMass * correctionFraction)
	if !a.Static {
		a.SetPosition(a.Position.Sub(correction.Scale(b.Mass / totalMass)))
	}
	if !b.Static {
		b.SetPosition(b.Position.Add(correction.Scale(a.Mass / totalMass)))
	}
}

// correctBoundary clamps the body's bounding radius inside [0, bounds] and
// reflects the normal velocity component scaled by restitution.
func correctBoundary(b *Body, bounds vmath.Vector2) {
	if b.Static {
		return
	}

	r := b.BoundingRadius()
	pos := b.Position
	vel := b.Velocity

	if pos.X-r < 0 {
		pos.X = r
		vel.X = -vel.X * b.Restitution
	} else if pos.X+r > bounds.X {
		pos.X = bounds.X - r
		vel.X = -vel.X * b.Restitution
	}

	if pos.Y-r < 0 {
		pos.Y = r
		vel.Y = -vel.Y * b.Restitution
	} else if pos.Y+r > bounds.Y {
		pos.Y = bounds.Y - r
		vel.Y = -vel.Y * b.Restitution
	}

	if pos != b.Position {
		b.SetPosition(pos)
	}
	b.Velocity = vel
}
