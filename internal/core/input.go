package core

// Action represents a semantic input action, abstracted from physical key
// presses. The platform layer maps keys (or SSH input) to actions.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump    // Space/Z while the soul is in gravity mode
	ActionConfirm // Z/Enter - confirm a menu selection
	ActionCancel  // X/Escape - back out of a menu
	ActionQuit    // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents accumulates held movement intents between simulation ticks.
// Press and Release are called from input events; the simulation reads the
// held set once per tick. Jump is edge-triggered: a press queues exactly one
// jump request, consumed by TakeJump.
type Intents struct {
	held       map[Action]bool
	jumpQueued bool
}

// NewIntents creates an empty intent set.
func NewIntents() *Intents {
	return &Intents{held: make(map[Action]bool)}
}

// Press marks an action as held. A jump press additionally queues a
// one-shot jump request.
func (in *Intents) Press(a Action) {
	if in.held == nil {
		in.held = make(map[Action]bool)
	}
	if a == ActionJump {
		in.jumpQueued = true
	}
	in.held[a] = true
}

// Release clears a held action.
func (in *Intents) Release(a Action) {
	delete(in.held, a)
}

// Held reports whether the action is currently held.
func (in *Intents) Held(a Action) bool {
	return in.held[a]
}

// TakeJump consumes a queued jump request, reporting whether one was pending.
func (in *Intents) TakeJump() bool {
	j := in.jumpQueued
	in.jumpQueued = false
	return j
}

// Axis returns the input direction implied by the held arrow actions.
// Opposing directions cancel. The result is not normalized.
func (in *Intents) Axis() Vec2 {
	var v Vec2
	if in.held[ActionLeft] {
		v.X -= 1
	}
	if in.held[ActionRight] {
		v.X += 1
	}
	if in.held[ActionUp] {
		v.Y -= 1
	}
	if in.held[ActionDown] {
		v.Y += 1
	}
	return v
}

// Clear releases every held action and any queued jump.
func (in *Intents) Clear() {
	for k := range in.held {
		delete(in.held, k)
	}
	in.jumpQueued = false
}
