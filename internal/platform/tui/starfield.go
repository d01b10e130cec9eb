package tui

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/bloop/internal/core"
)

// Starfield draws a scrolling field of stars in three depth layers.
// It takes the same inputs as the background shader: the viewport
// resolution, the horizontal direction modifier and a time value.
type Starfield struct {
	stars  []star
	colors [3]core.Color
}

type star struct {
	x, y  float64 // Normalized position in [0, 1)
	layer int     // 0 is farthest
}

// Layer tuning, far to near.
var (
	starGlyphs = [3]rune{'.', '·', '*'}
	starSpeeds = [3]float64{0.02, 0.05, 0.11} // Viewport heights per second
	starDrift  = [3]float64{0.5, 1.5, 3.0}    // Horizontal drift per unit of direction modifier
)

// NewStarfield creates count stars from a fixed seed.
func NewStarfield(count int, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64(),
			y:     rng.Float64(),
			layer: rng.Intn(len(starGlyphs)),
		}
	}

	// Far stars fade into the dark background.
	far, _ := colorful.Hex("#3a3f5c")
	near, _ := colorful.Hex("#ffffff")
	var colors [3]core.Color
	for i := range colors {
		c := far.BlendLab(near, float64(i)/float64(len(colors)-1)).Clamped()
		r, g, b := c.RGB255()
		colors[i] = core.RGB(r, g, b)
	}

	return &Starfield{stars: stars, colors: colors}
}

// Len returns the number of stars.
func (s *Starfield) Len() int {
	return len(s.stars)
}

// Draw plots the stars onto the top-left w x h cells of dst. Stars move
// down over time and slide sideways with the direction modifier.
func (s *Starfield) Draw(dst *core.Screen, w, h int, directionModifier, t float64) {
	if w <= 0 || h <= 0 {
		return
	}
	for _, st := range s.stars {
		x := frac(st.x - directionModifier*starDrift[st.layer])
		y := frac(st.y + t*starSpeeds[st.layer])
		cx, cy := int(x*float64(w)), int(y*float64(h))
		dst.SetCell(cx, cy, starGlyphs[st.layer], s.colors[st.layer])
	}
}

// frac returns the fractional part of v in [0, 1).
func frac(v float64) float64 {
	return v - math.Floor(v)
}
