// Package assets loads the sprite sheets used by the game.
//
// Textures are decoded once at start and sampled with nearest-neighbour
// filtering by the rasterizer.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"

	"github.com/vovakirdan/bloop/internal/core"
)

// Texture names known to the game.
const (
	ShipTexture  = "ship"
	LaserTexture = "laser-bolts"
)

// DefaultDir is the asset directory, relative to the working directory.
const DefaultDir = "assets"

// alphaOpaqueAt is the 16-bit alpha threshold for a visible texel.
const alphaOpaqueAt = 0x8000

// Required lists the textures LoadLibrary must find, keyed by name.
var Required = map[string]string{
	ShipTexture:  "ship.png",
	LaserTexture: "laser-bolts.png",
}

// Texture is a decoded image addressed in texel coordinates.
type Texture struct {
	Name string
	img  image.Image
}

// NewTexture wraps an already decoded image.
func NewTexture(name string, img image.Image) *Texture {
	return &Texture{Name: name, img: img}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the texture height in texels.
func (t *Texture) Height() int {
	return t.img.Bounds().Dy()
}

// At returns the texel at (x, y) and whether it is visible.
// Out of range coordinates are transparent.
func (t *Texture) At(x, y int) (core.Color, bool) {
	b := t.img.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y
	if x < 0 || y < 0 || px >= b.Max.X || py >= b.Max.Y {
		return core.ColorDefault, false
	}
	return toColor(t.img.At(px, py))
}

// Sample maps normalized (u, v) in [0, 1) over the src region to the nearest
// texel.
func (t *Texture) Sample(src core.Rect, u, v float64) (core.Color, bool) {
	x := int(src.X + u*src.W)
	y := int(src.Y + v*src.H)
	return t.At(x, y)
}

func toColor(c color.Color) (core.Color, bool) {
	r, g, b, a := c.RGBA()
	if a < alphaOpaqueAt {
		return core.ColorDefault, false
	}
	// Undo alpha premultiplication for partially transparent texels.
	if a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return core.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)), true
}

// Library holds every loaded texture by name.
type Library struct {
	textures map[string]*Texture
}

// NewLibrary creates a library from already loaded textures.
func NewLibrary(textures ...*Texture) *Library {
	lib := &Library{textures: make(map[string]*Texture, len(textures))}
	for _, t := range textures {
		lib.textures[t.Name] = t
	}
	return lib
}

// Get returns the texture with the given name.
func (l *Library) Get(name string) (*Texture, bool) {
	if l == nil {
		return nil, false
	}
	t, ok := l.textures[name]
	return t, ok
}

// Len returns the number of loaded textures.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.textures)
}

// LoadLibrary decodes every required texture from dir.
// Any missing or undecodable file is an error.
func LoadLibrary(dir string) (*Library, error) {
	if dir == "" {
		dir = DefaultDir
	}

	lib := NewLibrary()
	for name, file := range Required {
		t, err := LoadTexture(name, filepath.Join(dir, file))
		if err != nil {
			return nil, err
		}
		lib.textures[name] = t
	}
	return lib, nil
}

// LoadTexture decodes a single image file.
func LoadTexture(name, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("assets: %s is empty", path)
	}
	return NewTexture(name, img), nil
}
