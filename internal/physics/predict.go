package physics

import "github.com/chewxy/math32"

// predictLookahead is how far ahead (seconds) a predicted impact still counts
// as "will collide".
const predictLookahead = 0.1

// predictNeighborGate: prediction only runs for bodies with more cached
// neighbors than this, i.e. bodies in dense areas.
const predictNeighborGate = 3

// CollisionPrediction flags an ordered pair expected to touch within the
// lookahead window. Predicted pairs get an immediate narrow-phase check;
// everything else falls back to the periodic one.
type CollisionPrediction struct {
	A, B          *Body
	PredictedTime float32
	WillCollide   bool
}

// PredictCollisionTime estimates time-of-impact treating both bodies as
// expanding points with their bounding radii: solve
// (V·V)t² + 2(P·V)t + (P·P − R²) = 0 for relative position P, relative
// velocity V and combined radius R. Returns -1 when no impact is predicted.
func PredictCollisionTime(a, b *Body) float32 {
	relPos := b.Position.Sub(a.Position)
	relVel := b.Velocity.Sub(a.Velocity)
	radiusSum := a.BoundingRadius() + b.BoundingRadius()

	qa := relVel.Dot(relVel)
	qb := 2 * relPos.Dot(relVel)
	qc := relPos.Dot(relPos) - radiusSum*radiusSum

	if qa == 0 {
		// No relative motion: either already overlapping or never touching.
		if qc <= 0 {
			return 0
		}
		return -1
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return -1
	}

	sq := math32.Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)

	// Smaller non-negative root; if the smaller is negative the bodies are
	// already overlapping, so use the larger (treat as immediate).
	if t1 >= 0 {
		return t1
	}
	return t2
}

// predictions builds the flagged-pair list from the neighbor cache.
func predictions(cache *NeighborCache) []CollisionPrediction {
	var preds []CollisionPrediction
	for i := range cache.Infos() {
		info := &cache.Infos()[i]
		if len(info.Neighbors) <= predictNeighborGate {
			continue
		}
		for _, neighbor := range info.Neighbors {
			t := PredictCollisionTime(info.Body, neighbor)
			if t >= 0 && t <= predictLookahead {
				preds = append(preds, CollisionPrediction{
					A:             info.Body,
					B:             neighbor,
					PredictedTime: t,
					WillCollide:   true,
				})
			}
		}
	}
	return preds
}
