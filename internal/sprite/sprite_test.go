package sprite

import "testing"

func shipSprite() *AnimatedSprite {
	return New(16, 24, []Animation{
		{Name: "idle", Row: 0, Frames: 2, FPS: 12},
		{Name: "left", Row: 2, Frames: 2, FPS: 12},
		{Name: "right", Row: 4, Frames: 2, FPS: 12},
	}, true)
}

func TestFrameSourceRect(t *testing.T) {
	s := shipSprite()

	f := s.Frame()
	if f.Source.X != 0 || f.Source.Y != 0 || f.Source.W != 16 || f.Source.H != 24 {
		t.Errorf("idle frame 0 source = %+v", f.Source)
	}
	if f.DestW != 16 || f.DestH != 24 {
		t.Errorf("dest size = %vx%v, expected 16x24", f.DestW, f.DestH)
	}

	s.SetAnimation(2)
	if s.Frame().Source.Y != 96 {
		t.Errorf("right animation should read row 4 (y=96), got %v", s.Frame().Source.Y)
	}
}

func TestUpdateAdvancesAt12FPS(t *testing.T) {
	s := shipSprite()

	// Half a frame period does not advance.
	s.Update(1.0 / 24)
	if s.frame != 0 {
		t.Fatalf("frame advanced too early: %d", s.frame)
	}

	// Crossing 1/12s advances one frame and resets the clock.
	s.Update(1.0 / 20)
	if s.frame != 1 {
		t.Fatalf("expected frame 1, got %d", s.frame)
	}
	if s.Frame().Source.X != 16 {
		t.Errorf("frame 1 source x = %v, expected 16", s.Frame().Source.X)
	}

	// Wraps after the last frame.
	s.Update(0.1)
	if s.frame != 0 {
		t.Errorf("expected wrap to frame 0, got %d", s.frame)
	}
}

func TestStoppedSpriteDoesNotAdvance(t *testing.T) {
	s := New(16, 24, []Animation{{Name: "idle", Row: 0, Frames: 2, FPS: 12}}, false)

	for range 10 {
		s.Update(0.5)
	}
	if s.frame != 0 {
		t.Errorf("stopped sprite advanced to frame %d", s.frame)
	}
}

func TestSetAnimationByName(t *testing.T) {
	s := New(16, 16, []Animation{
		{Name: "bullet", Row: 0, Frames: 2, FPS: 12},
		{Name: "bolt", Row: 1, Frames: 2, FPS: 12},
	}, true)

	if !s.SetAnimationByName("bolt") {
		t.Fatal("bolt animation should exist")
	}
	if s.Animation().Name != "bolt" || s.Frame().Source.Y != 16 {
		t.Errorf("expected bolt at row 1, got %+v", s.Animation())
	}
	if s.SetAnimationByName("missing") {
		t.Error("unknown animation should not be selected")
	}
	if s.Animation().Name != "bolt" {
		t.Error("failed lookup should keep the current animation")
	}

	// Out of range indices are ignored.
	s.SetAnimation(7)
	if s.Animation().Name != "bolt" {
		t.Error("out of range SetAnimation should be ignored")
	}
}
