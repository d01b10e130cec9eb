// Package particles implements a small CPU particle emitter for one-shot
// effects such as explosions.
package particles

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/bloop/internal/core"
)

// ColorCurve interpolates particle color over its lifetime.
type ColorCurve struct {
	Start core.Color
	Mid   core.Color
	End   core.Color
}

// At returns the curve color at t in [0, 1].
func (c ColorCurve) At(t float64) core.Color {
	t = core.ClampF(t, 0, 1)
	if t < 0.5 {
		return blend(c.Start, c.Mid, t*2)
	}
	return blend(c.Mid, c.End, (t-0.5)*2)
}

func blend(a, b core.Color, t float64) core.Color {
	ca, cb := toColorful(a), toColorful(b)
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return core.RGB(r, g, bl)
}

func toColorful(c core.Color) colorful.Color {
	r, g, b := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Config describes how an emitter spawns particles.
type Config struct {
	Amount             int     // Particles per cycle
	OneShot            bool    // Stop emitting after one cycle
	Lifetime           float64 // Seconds a particle lives
	LifetimeRandomness float64 // Fraction of Lifetime randomly removed per particle
	Explosiveness      float64 // 0 spreads emission over the cycle, 1 emits everything at once
	DirectionSpread    float64 // Radians around straight up
	InitialVelocity    float64 // Pixels per second
	VelocityRandomness float64
	Size               float64
	SizeRandomness     float64
	Colors             ColorCurve
}

// ExplosionConfig returns the burst used when a square is destroyed.
func ExplosionConfig(amount int) Config {
	return Config{
		Amount:             amount,
		OneShot:            true,
		Lifetime:           0.6,
		LifetimeRandomness: 0.3,
		Explosiveness:      0.65,
		DirectionSpread:    2 * math.Pi,
		InitialVelocity:    300,
		Size:               3,
		SizeRandomness:     0.3,
		Colors: ColorCurve{
			Start: core.ColorRed,
			Mid:   core.ColorOrange,
			End:   core.ColorRed,
		},
	}
}

type particle struct {
	x, y     float64
	vx, vy   float64
	size     float64
	age      float64
	lifetime float64
}

// Emitter owns the particles of one effect. Positions are in world
// coordinates; the emitter origin is fixed at creation.
type Emitter struct {
	cfg       Config
	rng       *rand.Rand
	x, y      float64
	elapsed   float64
	emitted   int
	emitting  bool
	particles []particle
}

// NewEmitter creates an emitter anchored at (x, y).
func NewEmitter(cfg Config, x, y float64, seed int64) *Emitter {
	return &Emitter{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		x:         x,
		y:         y,
		emitting:  true,
		particles: make([]particle, 0, cfg.Amount),
	}
}

// Active reports whether the emitter is still emitting. One-shot emitters
// turn inactive once their cycle is over.
func (e *Emitter) Active() bool {
	return e.emitting
}

// Update advances the emitter by dt seconds.
func (e *Emitter) Update(dt float64) {
	// Age and move existing particles, dropping the dead ones in place.
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.age += dt
		if p.age >= p.lifetime {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		alive = append(alive, p)
	}
	e.particles = alive

	if !e.emitting {
		return
	}

	e.elapsed += dt
	for e.emitted < e.due() {
		e.spawn()
	}

	if e.elapsed >= e.cfg.Lifetime {
		if e.cfg.OneShot {
			e.emitting = false
			return
		}
		e.elapsed = 0
		e.emitted = 0
	}
}

// window returns the part of a cycle over which particles are emitted.
func (e *Emitter) window() float64 {
	return e.cfg.Lifetime * (1 - core.ClampF(e.cfg.Explosiveness, 0, 1))
}

// due returns how many particles the current cycle should have emitted by now.
func (e *Emitter) due() int {
	window := e.window()
	if window <= 0 || e.elapsed >= window {
		return e.cfg.Amount
	}
	return int(float64(e.cfg.Amount) * e.elapsed / window)
}

// spawn emits the next particle of the cycle. A particle whose emission time
// fell inside this update is advanced by the part of dt it has already lived.
func (e *Emitter) spawn() {
	lead := e.elapsed - e.window()*float64(e.emitted)/float64(e.cfg.Amount)
	lead = math.Max(lead, 0)
	e.emitted++

	angle := -math.Pi/2 + (e.rng.Float64()-0.5)*e.cfg.DirectionSpread
	speed := e.cfg.InitialVelocity * (1 - e.rng.Float64()*e.cfg.VelocityRandomness)
	p := particle{
		vx:       math.Cos(angle) * speed,
		vy:       math.Sin(angle) * speed,
		size:     e.cfg.Size * (1 - e.rng.Float64()*e.cfg.SizeRandomness),
		lifetime: e.cfg.Lifetime * (1 - e.rng.Float64()*e.cfg.LifetimeRandomness),
		age:      lead,
	}
	if p.age >= p.lifetime {
		return
	}
	p.x = e.x + p.vx*lead
	p.y = e.y + p.vy*lead
	e.particles = append(e.particles, p)
}

// Points returns the live particles for drawing.
func (e *Emitter) Points() []core.ParticlePoint {
	points := make([]core.ParticlePoint, 0, len(e.particles))
	for _, p := range e.particles {
		points = append(points, core.ParticlePoint{
			X:     p.x,
			Y:     p.y,
			Size:  p.size,
			Color: e.cfg.Colors.At(p.age / p.lifetime),
		})
	}
	return points
}
