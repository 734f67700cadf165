package physics

import (
	"github.com/chewxy/math32"

	"sandbox2d/internal/vmath"
)

// Pair is a canonically ordered unordered pair of candidate bodies: A always
// carries the smaller ID, so a pair spanning several grid cells dedupes to a
// single entry.
type Pair struct {
	A, B *Body
}

func makePair(a, b *Body) Pair {
	if a.ID > b.ID {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

func (p Pair) key() [2]uint64 {
	return [2]uint64{p.A.ID, p.B.ID}
}

// BroadPhase narrows all-pairs testing to AABB-overlapping candidates. Every
// strategy is rebuilt from scratch on its cadence and never persists body
// identity across a removal. The fixed grid produces the identical pair set
// as BruteForcePairs; the adaptive grid and quadtree trade a small miss rate
// for cheaper upkeep.
type BroadPhase interface {
	// Rebuild discards the structure and re-registers every body.
	Rebuild(bodies []*Body)
	// Pairs enumerates deduplicated candidate pairs from the last Rebuild.
	Pairs() []Pair
	// CellCount reports how many buckets the structure currently tracks.
	CellCount() int
}

// BruteForcePairs is the O(n²) candidate enumeration used below the
// acceleration threshold and as the reference the strategies are checked
// against.
func BruteForcePairs(bodies []*Body) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Bounds().Intersects(bodies[j].Bounds()) {
				pairs = append(pairs, makePair(bodies[i], bodies[j]))
			}
		}
	}
	return pairs
}

type gridCell struct {
	X, Y int
}

// GridBroadPhase registers each body in every fixed-size cell its AABB
// overlaps, then enumerates per-cell pairs with global dedup. Default
// strategy; simplest to verify.
type GridBroadPhase struct {
	CellSize float32
	cells    map[gridCell][]*Body
}

func NewGridBroadPhase(cellSize float32) *GridBroadPhase {
	if cellSize <= 0 {
		cellSize = 100
	}
	return &GridBroadPhase{
		CellSize: cellSize,
		cells:    make(map[gridCell][]*Body),
	}
}

func (g *GridBroadPhase) cellAt(p vmath.Vector2) gridCell {
	return gridCell{
		X: int(math32.Floor(p.X / g.CellSize)),
		Y: int(math32.Floor(p.Y / g.CellSize)),
	}
}

func (g *GridBroadPhase) Rebuild(bodies []*Body) {
	g.cells = make(map[gridCell][]*Body)
	for _, b := range bodies {
		bounds := b.Bounds()
		minCell := g.cellAt(bounds.Min)
		maxCell := g.cellAt(bounds.Max)
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				cell := gridCell{X: x, Y: y}
				g.cells[cell] = append(g.cells[cell], b)
			}
		}
	}
}

func (g *GridBroadPhase) Pairs() []Pair {
	var pairs []Pair
	seen := make(map[[2]uint64]bool)

	for _, bodies := range g.cells {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				if !bodies[i].Bounds().Intersects(bodies[j].Bounds()) {
					continue
				}
				p := makePair(bodies[i], bodies[j])
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

func (g *GridBroadPhase) CellCount() int {
	return len(g.cells)
}
