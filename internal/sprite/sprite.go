// Package sprite implements frame-based sprite sheet animation.
//
// A sheet is a grid of equally sized tiles. Each animation occupies one row
// of the sheet and plays its frames left to right at a fixed rate.
package sprite

import "github.com/vovakirdan/bloop/internal/core"

// Animation is one row of a sprite sheet.
type Animation struct {
	Name   string
	Row    int
	Frames int
	FPS    int
}

// Frame is the tile to draw this frame.
type Frame struct {
	Source core.Rect // Region of the sheet in texture pixels
	DestW  float64   // Natural width (tile width)
	DestH  float64   // Natural height (tile height)
}

// AnimatedSprite is a stateful animation clock over a sprite sheet.
type AnimatedSprite struct {
	tileW      float64
	tileH      float64
	animations []Animation
	current    int
	frame      int
	time       float64
	playing    bool
}

// New creates an animated sprite with tiles of tileW x tileH pixels.
func New(tileW, tileH int, animations []Animation, playing bool) *AnimatedSprite {
	anims := make([]Animation, len(animations))
	copy(anims, animations)
	return &AnimatedSprite{
		tileW:      float64(tileW),
		tileH:      float64(tileH),
		animations: anims,
		playing:    playing,
	}
}

// SetAnimation selects the animation at index i. The frame counter is kept
// (wrapped to the new animation's length) so switching rows does not restart.
func (s *AnimatedSprite) SetAnimation(i int) {
	if i < 0 || i >= len(s.animations) {
		return
	}
	s.current = i
	if n := s.animations[i].Frames; n > 0 {
		s.frame %= n
	}
}

// SetAnimationByName selects an animation by name.
// Returns false if no animation has that name.
func (s *AnimatedSprite) SetAnimationByName(name string) bool {
	for i, a := range s.animations {
		if a.Name == name {
			s.SetAnimation(i)
			return true
		}
	}
	return false
}

// Animation returns the currently selected animation.
func (s *AnimatedSprite) Animation() Animation {
	if len(s.animations) == 0 {
		return Animation{}
	}
	return s.animations[s.current]
}

// Update advances the animation clock by dt seconds.
func (s *AnimatedSprite) Update(dt float64) {
	anim := s.Animation()
	if anim.Frames <= 0 {
		return
	}
	if s.playing && anim.FPS > 0 {
		s.time += dt
		if s.time > 1/float64(anim.FPS) {
			s.frame++
			s.time = 0
		}
	}
	s.frame %= anim.Frames
}

// Frame returns the tile for the current frame.
func (s *AnimatedSprite) Frame() Frame {
	anim := s.Animation()
	return Frame{
		Source: core.NewRect(s.tileW*float64(s.frame), s.tileH*float64(anim.Row), s.tileW, s.tileH),
		DestW:  s.tileW,
		DestH:  s.tileH,
	}
}
