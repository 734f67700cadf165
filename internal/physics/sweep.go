package physics

import "sort"

type sweepEntry struct {
	body     *Body
	min, max float32
}

// SweepBroadPhase sorts body intervals along the X axis and sweeps an active
// list, so only bodies whose X extents overlap are tested on Y. Alternative
// strategy for wide, flat scenes.
type SweepBroadPhase struct {
	entries []sweepEntry
}

func NewSweepBroadPhase() *SweepBroadPhase {
	return &SweepBroadPhase{}
}

func (s *SweepBroadPhase) Rebuild(bodies []*Body) {
	s.entries = s.entries[:0]
	for _, b := range bodies {
		bounds := b.Bounds()
		s.entries = append(s.entries, sweepEntry{
			body: b,
			min:  bounds.Min.X,
			max:  bounds.Max.X,
		})
	}
	sort.Slice(s.entries, func(i, j int) bool {
		return s.entries[i].min < s.entries[j].min
	})
}

func (s *SweepBroadPhase) Pairs() []Pair {
	var pairs []Pair
	for i := 0; i < len(s.entries); i++ {
		for j := i + 1; j < len(s.entries); j++ {
			// Sorted by min X: once the next interval starts past our end,
			// nothing further can overlap.
			if s.entries[j].min > s.entries[i].max {
				break
			}
			if s.entries[i].body.Bounds().Intersects(s.entries[j].body.Bounds()) {
				pairs = append(pairs, makePair(s.entries[i].body, s.entries[j].body))
			}
		}
	}
	return pairs
}

func (s *SweepBroadPhase) CellCount() int {
	return 0
}
