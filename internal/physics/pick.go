package physics

import "sandbox2d/internal/vmath"

// PickBody returns the first body whose shape contains the point, in
// insertion order. With overlapping bodies the oldest one wins; the sandbox
// relies on that being deterministic.
func (w *World) PickBody(point vmath.Vector2) *Body {
	for _, b := range w.bodies {
		if b.Shape.ContainsPoint(b.Position, point) {
			return b
		}
	}
	return nil
}

// Select marks a body as the inspector target. Pass nil to deselect.
func (w *World) Select(b *Body) {
	w.selected = b
}

func (w *World) Selected() *Body {
	return w.selected
}

// BeginDrag picks the body under the pointer, selects it and starts the
// drag. Returns nil when the pointer hits empty space.
func (w *World) BeginDrag(pointer vmath.Vector2) *Body {
	b := w.PickBody(pointer)
	if b == nil {
		return nil
	}
	w.selected = b
	b.BeginDrag(pointer, w.now())
	return b
}

// UpdateDrag moves the dragged body with the pointer and records a movement
// sample for the release velocity.
func (w *World) UpdateDrag(pointer vmath.Vector2) {
	if w.selected == nil || !w.selected.Dragging {
		return
	}
	w.selected.UpdateDrag(pointer, w.now())
}

// EndDrag releases the dragged body, throwing it with the velocity derived
// from the recent movement samples. The body stays selected.
func (w *World) EndDrag() {
	if w.selected == nil || !w.selected.Dragging {
		return
	}
	w.selected.EndDrag()
}
