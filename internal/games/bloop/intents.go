package bloop

import "github.com/vovakirdan/bloop/internal/core"

// Intents is what the player asked for this frame. The same key means
// different things depending on the state: Space fires while playing and
// confirms everywhere else, Esc pauses while playing and exits from the menu.
type Intents struct {
	Left, Right, Up, Down bool // Held
	Fire                  bool
	Confirm               bool
	Pause                 bool
	Exit                  bool
}

// intentsFor maps an input frame to intents for the given state.
func intentsFor(state State, in core.InputFrame) Intents {
	var it Intents

	primary := in.Has(core.ActionPrimary)
	cancel := in.Has(core.ActionCancel)

	switch state {
	case StatePlaying:
		it.Left = in.IsHeld(core.ActionLeft)
		it.Right = in.IsHeld(core.ActionRight)
		it.Up = in.IsHeld(core.ActionUp)
		it.Down = in.IsHeld(core.ActionDown)
		it.Fire = primary
		it.Pause = cancel
	case StateMainMenu:
		it.Confirm = primary
		it.Exit = cancel
	case StatePaused, StateGameOver:
		it.Confirm = primary
	}

	return it
}
