package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sandbox2d/internal/physics"
)

var (
	colorBackground = rl.NewColor(18, 18, 24, 255)
	colorGridLine   = rl.NewColor(40, 40, 55, 255)
	colorSelection  = rl.NewColor(255, 203, 0, 255)
	colorVelocity   = rl.NewColor(0, 228, 48, 200)
	colorPrediction = rl.NewColor(230, 41, 55, 160)
	colorHUD        = rl.NewColor(200, 200, 210, 255)
)

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	if g.showGrid {
		g.drawBroadPhaseOverlay()
	}

	for _, b := range g.world.Bodies() {
		g.drawBody(b)
	}

	if g.showVelocity {
		g.drawVelocityOverlay()
	}
	if sel := g.world.Selected(); sel != nil {
		box := sel.Bounds()
		rl.DrawRectangleLines(
			int32(box.Min.X)-2, int32(box.Min.Y)-2,
			int32(box.Max.X-box.Min.X)+4, int32(box.Max.Y-box.Min.Y)+4,
			colorSelection)
	}

	if g.showCounters {
		g.drawHUD()
	}
	if g.showInspector {
		g.drawInspector()
	}

	rl.EndDrawing()
}

func (g *Game) drawBody(b *physics.Body) {
	col := rl.NewColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	center := rl.Vector2{X: b.Position.X, Y: b.Position.Y}

	switch b.Shape.Kind {
	case physics.KindCircle:
		rl.DrawCircleV(center, b.Shape.Radius, col)
	case physics.KindRect:
		box := b.Bounds()
		rl.DrawRectangleRec(rl.Rectangle{
			X:      box.Min.X,
			Y:      box.Min.Y,
			Width:  box.Max.X - box.Min.X,
			Height: box.Max.Y - box.Min.Y,
		}, col)
	case physics.KindTriangle:
		rl.DrawPoly(center, 3, b.Shape.BoundingRadius(), 90+b.Rotation*rl.Rad2deg, col)
	}

	if b.Static {
		rl.DrawCircleV(center, 3, rl.Gray)
	}
}

func (g *Game) drawVelocityOverlay() {
	for _, b := range g.world.Bodies() {
		if b.Velocity.LengthSq() < 1 {
			continue
		}
		tip := b.Position.Add(b.Velocity.Scale(0.1))
		rl.DrawLineEx(
			rl.Vector2{X: b.Position.X, Y: b.Position.Y},
			rl.Vector2{X: tip.X, Y: tip.Y},
			2, colorVelocity)
	}

	for _, p := range g.world.Predictions() {
		rl.DrawLineEx(
			rl.Vector2{X: p.A.Position.X, Y: p.A.Position.Y},
			rl.Vector2{X: p.B.Position.X, Y: p.B.Position.Y},
			1, colorPrediction)
	}
}

// drawBroadPhaseOverlay visualizes the active strategy: cell lines for the
// grids, populated-cell boxes for the adaptive grid.
func (g *Game) drawBroadPhaseOverlay() {
	bounds := g.world.Bounds()

	switch bp := g.world.BroadPhaseStrategy().(type) {
	case *physics.GridBroadPhase:
		for x := float32(0); x <= bounds.X; x += bp.CellSize {
			rl.DrawLineV(rl.Vector2{X: x}, rl.Vector2{X: x, Y: bounds.Y}, colorGridLine)
		}
		for y := float32(0); y <= bounds.Y; y += bp.CellSize {
			rl.DrawLineV(rl.Vector2{Y: y}, rl.Vector2{X: bounds.X, Y: y}, colorGridLine)
		}
	case *physics.AdaptiveGridBroadPhase:
		for _, cell := range bp.Cells() {
			// Hotter cells get a stronger tint.
			alpha := uint8(30)
			if cell.EnergyDensity > 1 {
				alpha = 90
			}
			rl.DrawRectangleLinesEx(rl.Rectangle{
				X:      cell.Min.X,
				Y:      cell.Min.Y,
				Width:  cell.Max.X - cell.Min.X,
				Height: cell.Max.Y - cell.Min.Y,
			}, 1, rl.NewColor(102, 191, 255, alpha))
		}
	}
}

func (g *Game) drawHUD() {
	c := g.world.Counters()
	status := "running"
	if g.paused {
		status = "paused"
	}
	lines := []string{
		fmt.Sprintf("%d FPS | %s | %s", rl.GetFPS(), status, g.strategies[g.strategy]),
		fmt.Sprintf("bodies %d", len(g.world.Bodies())),
		fmt.Sprintf("checks %d  contacts %d  step %.2fms", c.ChecksAttempted, c.Contacts, g.stepMs),
		fmt.Sprintf("cells %d  neighbors %d", c.TrackedCells, c.TrackedNeighbors),
		fmt.Sprintf("spawn: %s (1/2/3, right click)", g.spawnKind),
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(10+i*20), 18, colorHUD)
	}
}
