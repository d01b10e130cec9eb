package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bloop/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(2, 1, "BLOOP", core.ColorWhite)
	s.SetCell(0, 2, '█', core.ColorRed)

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, want 3", lines)
	}
	if !strings.Contains(out, "BLOOP") {
		t.Errorf("same colored run should stay contiguous, got %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Error("block cell missing from output")
	}
}

func TestStyleForCached(t *testing.T) {
	c := core.RGB(1, 2, 3)
	styleFor(c, core.ColorBlack)

	styleMu.Lock()
	_, ok := styleCache[colorPair{c, core.ColorBlack}]
	styleMu.Unlock()

	if !ok {
		t.Error("style should be cached after first use")
	}
}
