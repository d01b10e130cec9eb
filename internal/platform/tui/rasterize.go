package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/bloop/internal/assets"
	"github.com/vovakirdan/bloop/internal/core"
)

// Glyphs used when rasterizing pixel primitives into cells.
const (
	solidGlyph    = '█'
	missingGlyph  = '▒' // Texture not loaded
	particleSmall = '·'
	particleLarge = '•'
)

// Rasterizer turns a frame's draw commands into screen cells.
// Every cell covers CellW x CellH viewport pixels; a cell takes the color of
// whatever covers its centre.
type Rasterizer struct {
	cellW, cellH float64
	textures     *assets.Library
	stars        *Starfield
}

// NewRasterizer creates a rasterizer for the given cell metrics.
// A nil library draws textured quads as placeholder blocks.
func NewRasterizer(cellW, cellH int, textures *assets.Library, stars *Starfield) *Rasterizer {
	return &Rasterizer{
		cellW:    float64(max(cellW, 1)),
		cellH:    float64(max(cellH, 1)),
		textures: textures,
		stars:    stars,
	}
}

// MeasureText reports the pixel extent of text. The terminal has a single
// font size, so every rune is one cell wide whatever size is asked for.
func (r *Rasterizer) MeasureText(text string, _ float64) (w, h float64) {
	return float64(utf8.RuneCountInString(text)) * r.cellW, r.cellH
}

// Render draws cmds onto dst in order. t is the background time in seconds.
func (r *Rasterizer) Render(dst *core.Screen, cmds []core.DrawCommand, t float64) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case core.ClearCmd:
			dst.Fill(c.Color)
		case core.BackgroundCmd:
			if r.stars != nil {
				cols, rows := r.cells(dst, c.Resolution)
				r.stars.Draw(dst, cols, rows, c.DirectionModifier, t)
			}
		case core.TextureCmd:
			r.texture(dst, c)
		case core.RectCmd:
			r.rect(dst, c.Rect, solidGlyph, c.Color)
		case core.TextCmd:
			r.text(dst, c)
		case core.ParticlesCmd:
			r.particles(dst, c.Points)
		}
	}
}

// cells converts a pixel resolution to a cell grid no larger than dst.
// A zero resolution covers the whole screen.
func (r *Rasterizer) cells(dst *core.Screen, res [2]float64) (cols, rows int) {
	cols, rows = dst.Width(), dst.Height()
	if res[0] > 0 {
		cols = min(cols, int(math.Ceil(res[0]/r.cellW)))
	}
	if res[1] > 0 {
		rows = min(rows, int(math.Ceil(res[1]/r.cellH)))
	}
	return cols, rows
}

// cellSpan returns the cells whose centres lie inside [lo, hi) along one axis.
// A span narrower than a cell still covers the cell holding its midpoint.
func cellSpan(lo, hi, cell float64) (first, last int) {
	first = int(math.Ceil(lo/cell - 0.5))
	last = int(math.Ceil(hi/cell-0.5)) - 1
	if last < first {
		first = int(math.Floor((lo + hi) / 2 / cell))
		last = first
	}
	return first, last
}

func (r *Rasterizer) rect(dst *core.Screen, rc core.Rect, glyph rune, c core.Color) {
	if rc.W <= 0 || rc.H <= 0 {
		return
	}
	x0, x1 := cellSpan(rc.X, rc.Right(), r.cellW)
	y0, y1 := cellSpan(rc.Y, rc.Bottom(), r.cellH)
	dst.FillRect(x0, y0, x1-x0+1, y1-y0+1, glyph, c)
}

func (r *Rasterizer) texture(dst *core.Screen, c core.TextureCmd) {
	if c.Dst.W <= 0 || c.Dst.H <= 0 {
		return
	}
	tex, ok := r.textures.Get(c.Texture)
	if !ok {
		r.rect(dst, c.Dst, missingGlyph, core.ColorGray)
		return
	}

	x0, x1 := cellSpan(c.Dst.X, c.Dst.Right(), r.cellW)
	y0, y1 := cellSpan(c.Dst.Y, c.Dst.Bottom(), r.cellH)
	for cy := y0; cy <= y1; cy++ {
		v := ((float64(cy)+0.5)*r.cellH - c.Dst.Y) / c.Dst.H
		for cx := x0; cx <= x1; cx++ {
			u := ((float64(cx)+0.5)*r.cellW - c.Dst.X) / c.Dst.W
			col, visible := tex.Sample(c.Src, core.ClampF(u, 0, 0.999), core.ClampF(v, 0, 0.999))
			if visible {
				dst.SetCell(cx, cy, solidGlyph, col)
			}
		}
	}
}

// text places the string on the row just above its baseline.
func (r *Rasterizer) text(dst *core.Screen, c core.TextCmd) {
	row := int(math.Floor((c.Y - 1) / r.cellH))
	col := core.RoundInt(c.X / r.cellW)
	dst.DrawText(col, max(row, 0), c.Text, c.Color)
}

func (r *Rasterizer) particles(dst *core.Screen, points []core.ParticlePoint) {
	for _, p := range points {
		glyph := particleSmall
		if p.Size >= 2.5 {
			glyph = particleLarge
		}
		cx := int(math.Floor(p.X / r.cellW))
		cy := int(math.Floor(p.Y / r.cellH))
		dst.SetCell(cx, cy, glyph, p.Color)
	}
}
