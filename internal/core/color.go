package core

import "fmt"

// Color is a packed 24-bit RGB color for a screen cell.
// The zero value is ColorDefault and means "terminal default".
type Color uint32

const colorSet = 1 << 24

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Palette used by the game. Values follow the classic raylib/macroquad colors.
var (
	ColorDefault  Color
	ColorBlack    = RGB(0, 0, 0)
	ColorWhite    = RGB(255, 255, 255)
	ColorRed      = RGB(230, 41, 55)
	ColorGreen    = RGB(0, 228, 48)
	ColorOrange   = RGB(255, 161, 0)
	ColorYellow   = RGB(253, 249, 0)
	ColorSkyBlue  = RGB(102, 191, 255)
	ColorGray     = RGB(130, 130, 130)
	ColorDarkGray = RGB(80, 80, 80)
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
