package core

// DrawCommand is one primitive issued by a game for the current frame.
// The platform rasterizes commands in the order they were issued.
type DrawCommand interface {
	drawCommand()
}

// ClearCmd clears the frame to a background color.
type ClearCmd struct {
	Color Color
}

// BackgroundCmd draws the procedural starfield.
// Resolution and DirectionModifier are the uniforms the background needs;
// time is supplied by the renderer.
type BackgroundCmd struct {
	Resolution        [2]float64
	DirectionModifier float64
}

// TextureCmd draws the Src region of a named texture stretched over Dst.
type TextureCmd struct {
	Texture string
	Src     Rect
	Dst     Rect
}

// RectCmd draws a solid rectangle.
type RectCmd struct {
	Rect  Rect
	Color Color
}

// TextCmd draws text whose baseline starts at (X, Y).
type TextCmd struct {
	Text  string
	X, Y  float64
	Size  float64
	Color Color
}

// ParticlePoint is a single live particle in viewport pixels.
type ParticlePoint struct {
	X, Y  float64
	Size  float64
	Color Color
}

// ParticlesCmd draws the live particles of one emitter.
type ParticlesCmd struct {
	Points []ParticlePoint
}

func (ClearCmd) drawCommand()      {}
func (BackgroundCmd) drawCommand() {}
func (TextureCmd) drawCommand()    {}
func (RectCmd) drawCommand()       {}
func (TextCmd) drawCommand()       {}
func (ParticlesCmd) drawCommand()  {}

// TextMeasurer reports the size text will occupy once rendered, so games can
// lay out centered or right-aligned UI.
type TextMeasurer interface {
	MeasureText(text string, size float64) (w, h float64)
}

// DrawList collects the draw commands of a single frame.
type DrawList struct {
	cmds []DrawCommand
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{cmds: make([]DrawCommand, 0, 64)}
}

// Reset drops all commands while keeping the allocated storage.
func (d *DrawList) Reset() {
	clear(d.cmds)
	d.cmds = d.cmds[:0]
}

// Commands returns the commands issued so far.
func (d *DrawList) Commands() []DrawCommand {
	return d.cmds
}

// Len returns the number of commands issued so far.
func (d *DrawList) Len() int {
	return len(d.cmds)
}

// ClearBackground issues a ClearCmd.
func (d *DrawList) ClearBackground(c Color) {
	d.cmds = append(d.cmds, ClearCmd{Color: c})
}

// Background issues a BackgroundCmd.
func (d *DrawList) Background(w, h, directionModifier float64) {
	d.cmds = append(d.cmds, BackgroundCmd{
		Resolution:        [2]float64{w, h},
		DirectionModifier: directionModifier,
	})
}

// Texture issues a TextureCmd.
func (d *DrawList) Texture(name string, src, dst Rect) {
	d.cmds = append(d.cmds, TextureCmd{Texture: name, Src: src, Dst: dst})
}

// Rectangle issues a RectCmd.
func (d *DrawList) Rectangle(r Rect, c Color) {
	d.cmds = append(d.cmds, RectCmd{Rect: r, Color: c})
}

// Text issues a TextCmd.
func (d *DrawList) Text(text string, x, y, size float64, c Color) {
	d.cmds = append(d.cmds, TextCmd{Text: text, X: x, Y: y, Size: size, Color: c})
}

// Particles issues a ParticlesCmd. Empty point sets are dropped.
func (d *DrawList) Particles(points []ParticlePoint) {
	if len(points) == 0 {
		return
	}
	d.cmds = append(d.cmds, ParticlesCmd{Points: points})
}
