package physics

// NeighborInfo caches, for one body, the other bodies within a fixed radius.
type NeighborInfo struct {
	Body            *Body
	Neighbors       []*Body
	LastUpdateFrame int
}

// NeighborCache feeds the collision predictor. The recompute is itself O(n²)
// and the most expensive of the auxiliary paths, which is why it runs only
// every few frames; it does not replace the broad phase.
type NeighborCache struct {
	MaxDistance float32
	infos       []NeighborInfo
	byID        map[uint64]int
}

func NewNeighborCache(maxDistance float32) *NeighborCache {
	if maxDistance <= 0 {
		maxDistance = 100
	}
	return &NeighborCache{MaxDistance: maxDistance}
}

// Rebuild recomputes every body's neighbor list from scratch.
func (nc *NeighborCache) Rebuild(bodies []*Body, frame int) {
	nc.infos = nc.infos[:0]
	nc.byID = make(map[uint64]int, len(bodies))

	maxSq := nc.MaxDistance * nc.MaxDistance
	for _, b := range bodies {
		info := NeighborInfo{Body: b, LastUpdateFrame: frame}
		for _, other := range bodies {
			if other == b {
				continue
			}
			if b.Position.DistanceSq(other.Position) <= maxSq {
				info.Neighbors = append(info.Neighbors, other)
			}
		}
		nc.byID[b.ID] = len(nc.infos)
		nc.infos = append(nc.infos, info)
	}
}

// Neighbors returns the cached list for a body, nil if the body was absent
// from the last rebuild.
func (nc *NeighborCache) Neighbors(b *Body) []*Body {
	idx, ok := nc.byID[b.ID]
	if !ok {
		return nil
	}
	return nc.infos[idx].Neighbors
}

// TrackedCount reports how many bodies have cached neighbor lists.
func (nc *NeighborCache) TrackedCount() int {
	return len(nc.infos)
}

// Infos exposes the cache for the predictor's iteration.
func (nc *NeighborCache) Infos() []NeighborInfo {
	return nc.infos
}

// Clear drops every cached list (bulk body removal).
func (nc *NeighborCache) Clear() {
	nc.infos = nil
	nc.byID = nil
}
