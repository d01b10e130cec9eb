package bloop

import (
	"math/rand"

	"github.com/vovakirdan/bloop/internal/config"
)

// Spawner drops new squares from above the viewport.
type Spawner struct {
	rng *rand.Rand
	cfg config.ObstacleConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.ObstacleConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Roll runs one frame of the spawn policy. With the default tuning a square
// appears when a roll in [0, 100) is at least 95.
func (s *Spawner) Roll(screenW float64) (Shape, bool) {
	if s.rng.Intn(s.cfg.SpawnRoll) < s.cfg.SpawnThreshold {
		return Shape{}, false
	}
	return s.Spawn(screenW), true
}

// Spawn samples a square just above the viewport.
func (s *Spawner) Spawn(screenW float64) Shape {
	size := s.uniform(s.cfg.MinSize, s.cfg.MaxSize)
	speed := s.uniform(s.cfg.MinSpeed, s.cfg.MaxSpeed)

	// A viewport narrower than the square pins it to the middle.
	x := screenW / 2
	if screenW >= size {
		x = s.uniform(size/2, screenW-size/2)
	}

	return NewShape(size, speed, x, -size)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
