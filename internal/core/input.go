package core

// Action is a semantic input, abstracted from physical keys so adapters never
// see terminal key names.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow: move cursor up
	ActionDown           // S, J, Down arrow: move cursor down
	ActionLeft           // A, H, Left arrow: move cursor left
	ActionRight          // D, L, Right arrow: move cursor right
	ActionConfirm        // Enter, Space: place ship or fire
	ActionRotate         // R during setup: flip placement direction
	ActionRandom         // X: place remaining ships at random
	ActionReset          // C: clear the fleet and start placing again
	ActionRestart        // N: new match after game over
	ActionPause          // P: pause or resume
	ActionBack           // B, Escape: leave to the menu
	ActionQuit           // Q, Ctrl+C
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRotate:
		return "Rotate"
	case ActionRandom:
		return "Random"
	case ActionReset:
		return "Reset"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one tick. Repeated presses
// of the same key within a tick count once.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
