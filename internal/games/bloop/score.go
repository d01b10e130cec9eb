package bloop

import (
	"errors"

	"github.com/vovakirdan/bloop/internal/core"
	"github.com/vovakirdan/bloop/internal/particles"
	"github.com/vovakirdan/bloop/internal/storage"
)

// Score returns the score of the current run.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score known to the game.
func (g *Game) HighScore() int {
	return g.highScore
}

// hit credits a destroyed square and spawns its explosion.
func (g *Game) hit(sq Shape) {
	points := core.RoundInt(sq.Size)
	g.score += points
	g.highScore = max(g.highScore, g.score)
	g.hits++

	g.explosions = append(g.explosions, Explosion{
		X:         sq.X,
		Y:         sq.Y,
		Particles: points,
		Emitter:   particles.NewEmitter(g.explosionConfig(points), sq.X, sq.Y, g.rng.Int63()),
	})
}

// enterGameOver ends the run and persists the high score if this run holds it.
func (g *Game) enterGameOver() {
	g.state = StateGameOver
	if g.score != g.highScore {
		return
	}
	if err := g.store.Save(g.highScore); err != nil {
		g.logger.Debug("high score not saved", "score", g.highScore, "error", err)
	}
}

func (g *Game) loadHighScore() int {
	score, err := g.store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNoHighScore) {
			g.logger.Debug("high score not loaded", "error", err)
		}
		return 0
	}
	return score
}
