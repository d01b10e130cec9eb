package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bloop/internal/core"
)

// DefaultHoldWindow is how long an arrow counts as held after its last
// key event. It spans the usual terminal auto-repeat delay.
const DefaultHoldWindow = 500 * time.Millisecond

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Cancel     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Abort      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Cancel, k.Help, k.Abort}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Cancel, k.Screenshot, k.Help},
		{k.Abort},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire/confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// Action translates a key message to a game action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionPrimary
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel
	}
	return core.ActionNone
}

// KeyTracker turns the terminal's stream of key presses into frames.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held while its last event is younger than the hold
// window. Every press is also delivered once as an edge.
type KeyTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pressed  map[core.Action]bool
}

// NewKeyTracker creates a tracker with the given hold window.
func NewKeyTracker(window time.Duration) *KeyTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		pressed:  make(map[core.Action]bool),
	}
}

// opposite returns the direction that a press of a releases.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

func isDirection(a core.Action) bool {
	return opposite(a) != core.ActionNone
}

// Press records a key event at now.
func (k *KeyTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	k.pressed[a] = true
	if isDirection(a) {
		k.lastSeen[a] = now
		delete(k.lastSeen, opposite(a))
	}
}

// Frame builds the input for a frame at now and consumes pending edges.
func (k *KeyTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a := range k.pressed {
		in.Set(a)
	}
	clear(k.pressed)

	for a, seen := range k.lastSeen {
		if now.Sub(seen) < k.window {
			in.Hold(a)
		} else {
			delete(k.lastSeen, a)
		}
	}
	return in
}

// Reset forgets all pending and held keys.
func (k *KeyTracker) Reset() {
	clear(k.pressed)
	clear(k.lastSeen)
}
