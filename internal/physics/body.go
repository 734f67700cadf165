package physics

import "sandbox2d/internal/vmath"

// Color is a render-only pass-through; the engine never reads it.
type Color struct {
	R, G, B, A uint8
}

// dragHistorySize bounds the ring buffer of (position, time) samples recorded
// while a body is dragged. The exit velocity uses the last two samples.
const dragHistorySize = 5

type dragSample struct {
	pos  vmath.Vector2
	time float64
}

// Body is a 2D rigid body. Bodies are created through World.AddBody, which
// assigns the identity used by the acceleration structures and pair ordering.
//
// Static bodies are never integrated and never receive velocity or position
// writes from resolution; they only participate as a reference frame.
type Body struct {
	ID uint64

	Position        vmath.Vector2
	Velocity        vmath.Vector2
	Acceleration    vmath.Vector2
	Rotation        float32
	AngularVelocity float32

	Mass            float32
	Gravity         float32 // per-body override, applied along +Y when UseWorldGravity is false
	UseWorldGravity bool
	Friction        float32
	Restitution     float32
	Static          bool

	Shape Shape
	Color Color

	bounds         AABB
	boundingRadius float32

	// Drag state. While Dragging the body is positioned by the pointer and
	// skipped by integration.
	Dragging   bool
	dragOffset vmath.Vector2
	dragHist   [dragHistorySize]dragSample
	dragLen    int
	dragHead   int
}

// NewBody returns a body with the given shape at the given position.
// Mass defaults to 1 when non-positive (caller contract violation, clamped
// rather than failed).
func NewBody(shape Shape, position vmath.Vector2, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	b := &Body{
		Position:        position,
		Mass:            mass,
		UseWorldGravity: true,
		Friction:        0.1,
		Restitution:     0.8,
		Shape:           shape,
		Color:           Color{R: 255, G: 255, B: 255, A: 255},
	}
	b.updateBounds()
	return b
}

// Bounds returns the AABB computed after the last position change.
func (b *Body) Bounds() AABB {
	return b.bounds
}

// BoundingRadius returns the smallest-enclosing-circle radius for the shape.
func (b *Body) BoundingRadius() float32 {
	return b.boundingRadius
}

func (b *Body) updateBounds() {
	b.bounds = b.Shape.BoundingBox(b.Position)
	b.boundingRadius = b.Shape.BoundingRadius()
}

// SetPosition moves the body and recomputes its bounding box.
func (b *Body) SetPosition(p vmath.Vector2) {
	b.Position = p
	b.updateBounds()
}

// SetShape replaces the shape (e.g. a size edit from the panel) and
// recomputes the bounds.
func (b *Body) SetShape(s Shape) {
	b.Shape = s
	b.updateBounds()
}

// ApplyForce accumulates acceleration for the next integration step.
func (b *Body) ApplyForce(force vmath.Vector2) {
	if b.Static {
		return
	}
	b.Acceleration = b.Acceleration.Add(force.Scale(1 / b.Mass))
}

// ApplyImpulse changes velocity immediately.
func (b *Body) ApplyImpulse(impulse vmath.Vector2) {
	if b.Static {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Scale(1 / b.Mass))
}

// Integrate advances the body by dt. Gravity comes from the world vector or
// the per-body override, chosen by UseWorldGravity. The friction damping is
// the multiplicative v *= (1 - friction*dt) form; it is step-size dependent
// by documented choice, not an exponential decay.
func (b *Body) Integrate(dt float32, worldGravity vmath.Vector2) {
	if b.Static || b.Dragging {
		return
	}

	g := worldGravity
	if !b.UseWorldGravity {
		g = vmath.Vector2{X: 0, Y: b.Gravity}
	}

	b.Velocity = b.Velocity.Add(g.Add(b.Acceleration).Scale(dt))
	b.Velocity = b.Velocity.Scale(1 - b.Friction*dt)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Rotation += b.AngularVelocity * dt

	b.Acceleration = vmath.Vector2{}
	b.updateBounds()
}

// ContainsPoint reports whether the point is inside the body's shape.
func (b *Body) ContainsPoint(p vmath.Vector2) bool {
	return b.Shape.ContainsPoint(b.Position, p)
}

// BeginDrag zeroes motion and starts recording pointer samples. now is a
// timestamp in seconds; the world injects its clock here.
func (b *Body) BeginDrag(pointer vmath.Vector2, now float64) {
	b.Dragging = true
	b.dragOffset = pointer.Sub(b.Position)
	b.Velocity = vmath.Vector2{}
	b.AngularVelocity = 0
	b.dragLen = 0
	b.dragHead = 0
	b.recordDragSample(pointer, now)
}

// UpdateDrag moves the body with the pointer, preserving the grab offset.
func (b *Body) UpdateDrag(pointer vmath.Vector2, now float64) {
	if !b.Dragging {
		return
	}
	b.SetPosition(pointer.Sub(b.dragOffset))
	b.recordDragSample(pointer, now)
}

// EndDrag stops dragging and derives an exit velocity from the last two
// pointer samples. A near-zero sample interval leaves velocity unchanged.
func (b *Body) EndDrag() {
	if !b.Dragging {
		return
	}
	b.Dragging = false

	if b.dragLen >= 2 {
		last := b.dragHist[(b.dragHead+dragHistorySize-1)%dragHistorySize]
		prev := b.dragHist[(b.dragHead+dragHistorySize-2)%dragHistorySize]
		dt := last.time - prev.time
		if dt > 1e-4 {
			b.Velocity = last.pos.Sub(prev.pos).Scale(float32(1 / dt))
		}
	}
	b.dragLen = 0
	b.dragHead = 0
}

func (b *Body) recordDragSample(pos vmath.Vector2, now float64) {
	b.dragHist[b.dragHead] = dragSample{pos: pos, time: now}
	b.dragHead = (b.dragHead + 1) % dragHistorySize
	if b.dragLen < dragHistorySize {
		b.dragLen++
	}
}
