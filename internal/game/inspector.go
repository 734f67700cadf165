package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sandbox2d/internal/physics"
)

const (
	inspectorWidth = 260
	rowHeight      = 24
	rowPad         = 6
)

func (g *Game) inspectorRect() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(g.cfg.Window.Width - inspectorWidth),
		Y:      0,
		Width:  inspectorWidth,
		Height: float32(g.cfg.Window.Height),
	}
}

func (g *Game) inspectorContains(p rl.Vector2) bool {
	if g.world.Selected() == nil {
		return false
	}
	r := g.inspectorRect()
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// drawInspector renders the selected body's editable properties on the right.
func (g *Game) drawInspector() {
	sel := g.world.Selected()
	if sel == nil {
		return
	}

	panel := g.inspectorRect()
	rl.DrawRectangleRec(panel, rl.NewColor(24, 24, 32, 235))
	rl.DrawRectangle(int32(panel.X), 0, 2, int32(panel.Height), colorGridLine)

	x := panel.X + 12
	w := panel.Width - 24
	y := float32(12)

	rl.DrawText(fmt.Sprintf("body #%d (%s)", sel.ID, sel.Shape.Kind), int32(x), int32(y), 18, colorSelection)
	y += rowHeight + rowPad

	sel.Mass = g.slider(x, &y, w, "mass", sel.Mass, 0.1, 50)
	sel.Restitution = g.slider(x, &y, w, "restitution", sel.Restitution, 0, 1)
	sel.Friction = g.slider(x, &y, w, "friction", sel.Friction, 0, 1)

	switch sel.Shape.Kind {
	case physics.KindCircle:
		r := g.slider(x, &y, w, "radius", sel.Shape.Radius, 1, 200)
		if r != sel.Shape.Radius {
			sel.SetShape(physics.NewCircle(r))
		}
	case physics.KindRect:
		width := g.slider(x, &y, w, "width", sel.Shape.Width, 1, 400)
		height := g.slider(x, &y, w, "height", sel.Shape.Height, 1, 400)
		if width != sel.Shape.Width || height != sel.Shape.Height {
			sel.SetShape(physics.NewRect(width, height))
		}
	case physics.KindTriangle:
		side := g.slider(x, &y, w, "side", sel.Shape.Side, 1, 300)
		if side != sel.Shape.Side {
			sel.SetShape(physics.NewTriangle(side))
		}
	}

	sel.Static = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: rowHeight, Height: rowHeight}, "static", sel.Static)
	y += rowHeight + rowPad
	sel.UseWorldGravity = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: rowHeight, Height: rowHeight}, "world gravity", sel.UseWorldGravity)
	y += rowHeight + rowPad
	if !sel.UseWorldGravity {
		sel.Gravity = g.slider(x, &y, w, "gravity", sel.Gravity, -2000, 2000)
	}

	y += rowPad
	rl.DrawText("color", int32(x), int32(y), 16, colorHUD)
	y += rowHeight
	sel.Color.R = uint8(g.slider(x, &y, w, "r", float32(sel.Color.R), 0, 255))
	sel.Color.G = uint8(g.slider(x, &y, w, "g", float32(sel.Color.G), 0, 255))
	sel.Color.B = uint8(g.slider(x, &y, w, "b", float32(sel.Color.B), 0, 255))

	y += rowPad
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 28}, "remove body") {
		g.world.RemoveBody(sel)
		return
	}
	y += 28 + rowPad

	rl.DrawText(fmt.Sprintf("velocity (%.0f, %.0f)", sel.Velocity.X, sel.Velocity.Y), int32(x), int32(y), 16, colorHUD)
}

func (g *Game) slider(x float32, y *float32, w float32, label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(*y+4), 14, colorHUD)
	bounds := rl.Rectangle{X: x + 80, Y: *y, Width: w - 80, Height: rowHeight - 6}
	out := gui.Slider(bounds, "", fmt.Sprintf("%.1f", value), value, min, max)
	*y += rowHeight + rowPad
	return out
}
