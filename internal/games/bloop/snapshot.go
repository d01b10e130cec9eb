package bloop

import "math"

// Snapshot is a copy of the simulation state for tests and debugging.
// Entities are copied by value; explosions keep only their anchors.
type Snapshot struct {
	State             State
	Ship              Shape
	Projectiles       []Shape
	Obstacles         []Shape
	Explosions        [][2]float64
	Score             int
	HighScore         int
	Shots             int
	Hits              int
	DirectionModifier float64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	explosions := make([][2]float64, len(g.explosions))
	for i, e := range g.explosions {
		explosions[i] = [2]float64{e.X, e.Y}
	}

	return Snapshot{
		State:             g.state,
		Ship:              g.ship,
		Projectiles:       append([]Shape(nil), g.projectiles...),
		Obstacles:         append([]Shape(nil), g.obstacles...),
		Explosions:        explosions,
		Score:             g.score,
		HighScore:         g.highScore,
		Shots:             g.shots,
		Hits:              g.hits,
		DirectionModifier: g.directionModifier,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.State)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)            //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Explosions)) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.DirectionModifier)

	h = hashShape(h, snap.Ship)
	for _, p := range snap.Projectiles {
		h = hashShape(h, p)
	}
	for _, o := range snap.Obstacles {
		h = hashShape(h, o)
	}
	for _, e := range snap.Explosions {
		h = h*31 + math.Float64bits(e[0])
		h = h*31 + math.Float64bits(e[1])
	}

	return h
}

func hashShape(h uint64, s Shape) uint64 {
	h = h*31 + math.Float64bits(s.Size)
	h = h*31 + math.Float64bits(s.Speed)
	h = h*31 + math.Float64bits(s.X)
	h = h*31 + math.Float64bits(s.Y)
	return h
}
