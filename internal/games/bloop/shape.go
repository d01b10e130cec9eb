package bloop

import (
	"fmt"

	"github.com/vovakirdan/bloop/internal/core"
)

// Shape is the entity shared by the ship, projectiles and obstacles.
// X and Y are the centre of a square box with side Size.
type Shape struct {
	Size     float64 // Box side in pixels
	Speed    float64 // Pixels per second; direction depends on the role
	X, Y     float64
	Collided bool // Marked during the collision pass, removed at retirement
}

// NewShape creates a shape centred at (x, y). Size must be positive.
func NewShape(size, speed, x, y float64) Shape {
	if size <= 0 {
		panic(fmt.Sprintf("bloop: shape size must be positive, got %v", size))
	}
	return Shape{Size: size, Speed: speed, X: x, Y: y}
}

// Rect returns the collision box.
func (s Shape) Rect() core.Rect {
	return core.NewRect(s.X-s.Size/2, s.Y-s.Size/2, s.Size, s.Size)
}

// Overlaps reports whether the two boxes intersect. Touching edges do not count.
func (s Shape) Overlaps(other Shape) bool {
	return s.Rect().Overlaps(other.Rect())
}

// retain keeps the shapes for which keep returns true, reusing the backing array.
func retain(shapes []Shape, keep func(Shape) bool) []Shape {
	out := shapes[:0]
	for _, s := range shapes {
		if keep(s) {
			out = append(out, s)
		}
	}
	clear(shapes[len(out):])
	return out
}
