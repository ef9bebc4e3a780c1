package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start run, advance to next stage
	ActionBack           // B, Escape - back to title after a run ends
	ActionRestart        // R key - restart after game over or game clear
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the three phases of a drag gesture.
type PointerKind int

const (
	PointerBegin PointerKind = iota // Button pressed / touch started
	PointerMove                     // Pointer moved while held
	PointerEnd                      // Button released / touch ended
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerBegin:
		return "begin"
	case PointerMove:
		return "move"
	case PointerEnd:
		return "end"
	default:
		return "unknown"
	}
}

// PointerEvent is a drag gesture sample already translated to board space.
// InGrid is false when the pointer was outside the board.
type PointerEvent struct {
	Kind   PointerKind
	Cell   Cell
	InGrid bool
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds drag samples in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer-begin sample.
func (f *InputFrame) Press(c Cell, inGrid bool) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: PointerBegin, Cell: c, InGrid: inGrid})
}

// Drag records a pointer-move sample.
func (f *InputFrame) Drag(c Cell, inGrid bool) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: PointerMove, Cell: c, InGrid: inGrid})
}

// Release records a pointer-end sample.
func (f *InputFrame) Release() {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: PointerEnd})
}

// Clear resets all actions and pointer samples for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
