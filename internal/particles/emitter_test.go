package particles

import (
	"math"
	"testing"

	"github.com/vovakirdan/bloop/internal/core"
)

func TestExplosionEmitsAmountThenStops(t *testing.T) {
	e := NewEmitter(ExplosionConfig(20), 100, 100, 1)

	if !e.Active() {
		t.Fatal("new emitter should be active")
	}
	if len(e.Points()) != 0 {
		t.Errorf("nothing should be emitted before the first update, got %d", len(e.Points()))
	}

	// The emission window is lifetime * (1 - explosiveness) = 0.21s.
	e.Update(0.25)
	if e.emitted != 20 {
		t.Errorf("expected all 20 particles emitted after the window, got %d", e.emitted)
	}
	if !e.Active() {
		t.Error("emitter should still be active before its lifetime ends")
	}

	e.Update(0.4)
	if e.Active() {
		t.Error("one-shot emitter should turn inactive after its lifetime")
	}

	// Particles outlive the emitting flag but never the configured lifetime.
	e.Update(0.7)
	if len(e.Points()) != 0 {
		t.Errorf("all particles should be dead, %d alive", len(e.Points()))
	}
}

func TestEmissionIsGradualWithinWindow(t *testing.T) {
	e := NewEmitter(ExplosionConfig(20), 0, 0, 7)
	e.Update(0.105) // half of the 0.21s window

	if e.emitted == 0 || e.emitted >= 20 {
		t.Errorf("expected partial emission mid-window, got %d", e.emitted)
	}
}

func TestFullyExplosiveEmitsAtOnce(t *testing.T) {
	cfg := ExplosionConfig(12)
	cfg.Explosiveness = 1
	e := NewEmitter(cfg, 0, 0, 3)

	e.Update(0.001)
	if len(e.Points()) != 12 {
		t.Errorf("expected 12 particles after the first update, got %d", len(e.Points()))
	}
}

func TestFirstUpdateMovesNewParticles(t *testing.T) {
	cfg := ExplosionConfig(8)
	cfg.Explosiveness = 1
	e := NewEmitter(cfg, 50, 50, 5)

	// Every particle is emitted at the start of the frame and flies for
	// the whole dt at 300 px/s.
	e.Update(0.1)

	points := e.Points()
	if len(points) != 8 {
		t.Fatalf("expected 8 particles, got %d", len(points))
	}
	for i, p := range points {
		if d := math.Hypot(p.X-50, p.Y-50); math.Abs(d-30) > 1e-9 {
			t.Errorf("particle %d is %v px from the origin, want 30", i, d)
		}
	}
}

func TestLateParticlesTravelLess(t *testing.T) {
	e := NewEmitter(ExplosionConfig(20), 0, 0, 13)
	e.Update(0.2)

	// Emission is spread over 0.21s so the first particle has flown the
	// longest and the last one has barely left.
	first := math.Hypot(e.particles[0].x, e.particles[0].y)
	last := e.particles[len(e.particles)-1]
	if first <= math.Hypot(last.x, last.y) {
		t.Errorf("first particle at %v px should be ahead of the last", first)
	}
	if e.particles[0].age <= last.age {
		t.Errorf("first particle age %v should exceed last %v", e.particles[0].age, last.age)
	}
}

func TestParticlesMoveAwayFromOrigin(t *testing.T) {
	e := NewEmitter(ExplosionConfig(10), 50, 50, 11)
	e.Update(0.3)

	points := e.Points()
	if len(points) == 0 {
		t.Fatal("expected live particles")
	}
	moved := 0
	for _, p := range points {
		if p.X != 50 || p.Y != 50 {
			moved++
		}
		if p.Size <= 0 || p.Size > 3 {
			t.Errorf("particle size %v outside (0, 3]", p.Size)
		}
		if p.Color.IsDefault() {
			t.Error("particles should carry an explicit color")
		}
	}
	if moved == 0 {
		t.Error("particles should move after emission")
	}
}

func TestColorCurve(t *testing.T) {
	curve := ColorCurve{Start: core.ColorRed, Mid: core.ColorOrange, End: core.ColorRed}

	if got := curve.At(0); got != core.ColorRed {
		t.Errorf("At(0) = %s, expected red", got.Hex())
	}
	if got := curve.At(0.5); got != core.ColorOrange {
		t.Errorf("At(0.5) = %s, expected orange", got.Hex())
	}
	if got := curve.At(1); got != core.ColorRed {
		t.Errorf("At(1) = %s, expected red", got.Hex())
	}

	r, g, _ := curve.At(0.25).Components()
	if r < 230 || g <= 41 || g >= 161 {
		t.Errorf("At(0.25) should sit between red and orange, got %s", curve.At(0.25).Hex())
	}
}

func TestEmitterDeterminism(t *testing.T) {
	a := NewEmitter(ExplosionConfig(30), 10, 10, 99)
	b := NewEmitter(ExplosionConfig(30), 10, 10, 99)
	for range 5 {
		a.Update(0.05)
		b.Update(0.05)
	}

	pa, pb := a.Points(), b.Points()
	if len(pa) != len(pb) {
		t.Fatalf("live counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
