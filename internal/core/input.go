package core

// Action represents a physical control abstracted from the actual key binding.
// Games translate actions into intents depending on their own state.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow
	ActionRight          // Right arrow
	ActionUp             // Up arrow
	ActionDown           // Down arrow
	ActionPrimary        // Space - fire or confirm
	ActionCancel         // Esc - pause or exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPrimary:
		return "Primary"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation frame.
// Pressed actions are edge-triggered (once per key press); held actions are
// level-triggered and stay set for every frame the key is down.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held down this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action is held down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}
