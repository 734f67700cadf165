package physics

import "sandbox2d/internal/vmath"

const (
	quadtreeCapacity = 10
	quadtreeMaxDepth = 8
)

type quadtreeNode struct {
	center     vmath.Vector2
	halfWidth  float32
	halfHeight float32
	depth      int
	bodies     []*Body
	children   [4]*quadtreeNode // nil until split
}

// QuadtreeBroadPhase is the hierarchical alternative to the grid. Placement
// is by body center point only, not the full AABB, so a body straddling a
// boundary is bucketed approximately. The tree is cleared and
// bulk-reinserted on every rebuild; there is no incremental update.
type QuadtreeBroadPhase struct {
	WorldBounds vmath.Vector2
	root        *quadtreeNode
	nodeCount   int
}

func NewQuadtreeBroadPhase(worldBounds vmath.Vector2) *QuadtreeBroadPhase {
	return &QuadtreeBroadPhase{WorldBounds: worldBounds}
}

func (q *QuadtreeBroadPhase) SetWorldBounds(bounds vmath.Vector2) {
	q.WorldBounds = bounds
}

func (q *QuadtreeBroadPhase) Rebuild(bodies []*Body) {
	q.root = &quadtreeNode{
		center:     vmath.Vector2{X: q.WorldBounds.X / 2, Y: q.WorldBounds.Y / 2},
		halfWidth:  q.WorldBounds.X / 2,
		halfHeight: q.WorldBounds.Y / 2,
	}
	q.nodeCount = 1
	for _, b := range bodies {
		q.insert(q.root, b)
	}
}

func (q *QuadtreeBroadPhase) insert(n *quadtreeNode, b *Body) {
	if n.children[0] != nil {
		q.insert(n.children[q.childIndex(n, b.Position)], b)
		return
	}

	n.bodies = append(n.bodies, b)
	if len(n.bodies) > quadtreeCapacity && n.depth < quadtreeMaxDepth {
		q.split(n)
	}
}

// childIndex picks the quadrant containing the point: 0 NW, 1 NE, 2 SW, 3 SE.
func (q *QuadtreeBroadPhase) childIndex(n *quadtreeNode, p vmath.Vector2) int {
	idx := 0
	if p.X >= n.center.X {
		idx |= 1
	}
	if p.Y >= n.center.Y {
		idx |= 2
	}
	return idx
}

func (q *QuadtreeBroadPhase) split(n *quadtreeNode) {
	hw, hh := n.halfWidth/2, n.halfHeight/2
	offsets := [4]vmath.Vector2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
	}
	for i := range n.children {
		n.children[i] = &quadtreeNode{
			center:     n.center.Add(offsets[i]),
			halfWidth:  hw,
			halfHeight: hh,
			depth:      n.depth + 1,
		}
	}
	q.nodeCount += 4

	bodies := n.bodies
	n.bodies = nil
	for _, b := range bodies {
		q.insert(n.children[q.childIndex(n, b.Position)], b)
	}
}

func (q *QuadtreeBroadPhase) Pairs() []Pair {
	if q.root == nil {
		return nil
	}
	var pairs []Pair
	collectQuadtreePairs(q.root, &pairs)
	return pairs
}

// collectQuadtreePairs pairs each leaf's bodies with each other. Bodies live
// only on leaves (split pushes everything down), so each body is in exactly
// one leaf and no dedup set is needed.
func collectQuadtreePairs(n *quadtreeNode, pairs *[]Pair) {
	if n.children[0] != nil {
		for _, child := range n.children {
			collectQuadtreePairs(child, pairs)
		}
		return
	}
	for i := 0; i < len(n.bodies); i++ {
		for j := i + 1; j < len(n.bodies); j++ {
			if n.bodies[i].Bounds().Intersects(n.bodies[j].Bounds()) {
				*pairs = append(*pairs, makePair(n.bodies[i], n.bodies[j]))
			}
		}
	}
}

func (q *QuadtreeBroadPhase) CellCount() int {
	return q.nodeCount
}
