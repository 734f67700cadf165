package physics

import "sandbox2d/internal/vmath"

// SpatialCell is one bucket of the adaptive grid. EnergyDensity is advisory
// only (summed kinetic energy over cell area); nothing gates on it.
type SpatialCell struct {
	Min, Max        vmath.Vector2
	Bodies          []*Body
	EnergyDensity   float32
	LastUpdateFrame int
}

// OverlapsCircle reports whether a bounding circle touches the cell.
func (c *SpatialCell) OverlapsCircle(center vmath.Vector2, radius float32) bool {
	closest := vmath.Vector2{
		X: vmath.Clamp(center.X, c.Min.X, c.Max.X),
		Y: vmath.Clamp(center.Y, c.Min.Y, c.Max.Y),
	}
	return center.Distance(closest) <= radius
}

// AdaptiveGridBroadPhase shrinks its cell size within [MinCellSize,
// MaxCellSize] as estimated body density rises, keeping per-cell population
// roughly constant. Secondary refinement strategy over the fixed grid.
type AdaptiveGridBroadPhase struct {
	WorldBounds vmath.Vector2
	MinCellSize float32
	MaxCellSize float32

	cells []SpatialCell
	frame int
}

func NewAdaptiveGridBroadPhase(worldBounds vmath.Vector2) *AdaptiveGridBroadPhase {
	return &AdaptiveGridBroadPhase{
		WorldBounds: worldBounds,
		MinCellSize: 50,
		MaxCellSize: 200,
	}
}

func (a *AdaptiveGridBroadPhase) SetWorldBounds(bounds vmath.Vector2) {
	a.WorldBounds = bounds
}

// cellSizeFor estimates density from an assumed ~50x50 footprint per body
// and shrinks cells as density rises.
func (a *AdaptiveGridBroadPhase) cellSizeFor(n int) float32 {
	if n == 0 {
		return 100
	}
	totalArea := a.WorldBounds.X * a.WorldBounds.Y
	if totalArea <= 0 {
		return a.MaxCellSize
	}
	density := float32(n) * 50 * 50 / totalArea
	return vmath.Clamp(100/(1+density*10), a.MinCellSize, a.MaxCellSize)
}

func (a *AdaptiveGridBroadPhase) Rebuild(bodies []*Body) {
	a.frame++
	a.cells = a.cells[:0]

	cellSize := a.cellSizeFor(len(bodies))
	for x := float32(0); x < a.WorldBounds.X; x += cellSize {
		for y := float32(0); y < a.WorldBounds.Y; y += cellSize {
			a.cells = append(a.cells, SpatialCell{
				Min:             vmath.Vector2{X: x, Y: y},
				Max:             vmath.Vector2{X: x + cellSize, Y: y + cellSize},
				LastUpdateFrame: a.frame,
			})
		}
	}

	for _, b := range bodies {
		for i := range a.cells {
			if a.cells[i].OverlapsCircle(b.Position, b.BoundingRadius()) {
				a.cells[i].Bodies = append(a.cells[i].Bodies, b)
			}
		}
	}

	for i := range a.cells {
		a.cells[i].EnergyDensity = cellEnergyDensity(&a.cells[i])
	}
}

// cellEnergyDensity sums kinetic energy over the cell area.
func cellEnergyDensity(c *SpatialCell) float32 {
	if len(c.Bodies) == 0 {
		return 0
	}
	var total float32
	for _, b := range c.Bodies {
		total += 0.5 * b.Mass * b.Velocity.LengthSq()
	}
	area := (c.Max.X - c.Min.X) * (c.Max.Y - c.Min.Y)
	if area <= 0 {
		return 0
	}
	return total / area
}

func (a *AdaptiveGridBroadPhase) Pairs() []Pair {
	var pairs []Pair
	seen := make(map[[2]uint64]bool)

	for i := range a.cells {
		bodies := a.cells[i].Bodies
		for j := 0; j < len(bodies); j++ {
			for k := j + 1; k < len(bodies); k++ {
				if !bodies[j].Bounds().Intersects(bodies[k].Bounds()) {
					continue
				}
				p := makePair(bodies[j], bodies[k])
				if seen[p.key()] {
					continue
				}
				seen[p.key()] = true
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}

func (a *AdaptiveGridBroadPhase) CellCount() int {
	return len(a.cells)
}

// Cells exposes the cell list for debug overlays.
func (a *AdaptiveGridBroadPhase) Cells() []SpatialCell {
	return a.cells
}
