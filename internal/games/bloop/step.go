package bloop

import (
	"github.com/vovakirdan/bloop/internal/core"
	"github.com/vovakirdan/bloop/internal/particles"
)

// clampShip keeps the ship center inside the viewport.
func (g *Game) clampShip() {
	g.ship.X = core.ClampF(g.ship.X, 0, g.rt.ViewportW())
	g.ship.Y = core.ClampF(g.ship.Y, 0, g.rt.ViewportH())
}

// simulate runs one playing frame. The order of the stages is fixed.
func (g *Game) simulate(it Intents, dt float64) {
	w, h := g.rt.ViewportW(), g.rt.ViewportH()
	g.elapsed += dt

	g.move(it, dt)

	if it.Fire {
		g.projectiles = append(g.projectiles, NewShape(
			g.cfg.Projectile.Size,
			g.ship.Speed*g.cfg.Projectile.SpeedFactor,
			g.ship.X,
			g.ship.Y-g.cfg.Ship.FireOffset,
		))
		g.shots++
	}

	g.clampShip()

	if sq, ok := g.spawn.Roll(w); ok {
		g.obstacles = append(g.obstacles, sq)
	}

	for i := range g.obstacles {
		g.obstacles[i].Y += g.obstacles[i].Speed * dt
	}
	for i := range g.projectiles {
		g.projectiles[i].Y -= g.projectiles[i].Speed * dt
	}

	g.shipSprite.Update(dt)
	g.boltSprite.Update(dt)
	for _, e := range g.explosions {
		e.Emitter.Update(dt)
	}

	g.collide()

	g.obstacles = retain(g.obstacles, func(s Shape) bool {
		return s.Y < h+s.Size && !s.Collided
	})
	g.projectiles = retain(g.projectiles, func(s Shape) bool {
		return s.Y > -s.Size/2 && !s.Collided
	})
	g.retireExplosions()

	for _, sq := range g.obstacles {
		if g.ship.Overlaps(sq) {
			g.enterGameOver()
			break
		}
	}
}

// move applies held direction keys. Horizontal movement also steers the
// starfield and picks the ship animation; left wins when both are held.
func (g *Game) move(it Intents, dt float64) {
	step := g.ship.Speed * dt
	rate := g.cfg.Background.DirectionRate * dt

	g.shipSprite.SetAnimation(animIdle)
	if it.Right {
		g.ship.X += step
		g.directionModifier += rate
		g.shipSprite.SetAnimation(animRight)
	}
	if it.Left {
		g.ship.X -= step
		g.directionModifier -= rate
		g.shipSprite.SetAnimation(animLeft)
	}
	if it.Down {
		g.ship.Y += step
	}
	if it.Up {
		g.ship.Y -= step
	}
}

// collide tests every square against every live projectile. A projectile
// destroys at most one square per frame.
func (g *Game) collide() {
	for i := range g.obstacles {
		sq := &g.obstacles[i]
		for j := range g.projectiles {
			p := &g.projectiles[j]
			if p.Collided || !p.Overlaps(*sq) {
				continue
			}
			p.Collided = true
			sq.Collided = true
			g.hit(*sq)
			break
		}
	}
}

func (g *Game) explosionConfig(amount int) particles.Config {
	ec := g.cfg.Explosion
	pc := particles.ExplosionConfig(amount)
	pc.Lifetime = ec.Lifetime
	pc.LifetimeRandomness = ec.LifetimeRandomness
	pc.Explosiveness = ec.Explosiveness
	pc.InitialVelocity = ec.InitialVelocity
	pc.Size = ec.Size
	pc.SizeRandomness = ec.SizeRandomness
	return pc
}

func (g *Game) retireExplosions() {
	out := g.explosions[:0]
	for _, e := range g.explosions {
		if e.Emitter.Active() {
			out = append(out, e)
		}
	}
	clear(g.explosions[len(out):])
	g.explosions = out
}
