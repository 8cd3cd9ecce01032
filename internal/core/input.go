package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with intents rather than raw terminal keys.
type Action int

const (
	ActionNone        Action = iota
	ActionDodgeLeft          // Right arrow - sidestep an obstacle coming from the left
	ActionDodgeRight         // Left arrow - sidestep an obstacle coming from the right
	ActionDodgeCenter        // Up arrow - jump over an obstacle in the middle
	ActionDodgeAbove         // Down arrow - duck under an obstacle from above
	ActionBreak              // Space/Enter - break a bonus box
	ActionToggleMusic        // Home - pause/resume background music
	ActionQueryLives         // V - announce remaining lives
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDodgeLeft:
		return "DodgeLeft"
	case ActionDodgeRight:
		return "DodgeRight"
	case ActionDodgeCenter:
		return "DodgeCenter"
	case ActionDodgeAbove:
		return "DodgeAbove"
	case ActionBreak:
		return "Break"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionQueryLives:
		return "QueryLives"
	default:
		return "Unknown"
	}
}

// IsGame reports whether the action can answer an obstacle.
func (a Action) IsGame() bool {
	return a >= ActionDodgeLeft && a <= ActionBreak
}

// IsHousekeeping reports whether the action is a debounced utility key.
func (a Action) IsHousekeeping() bool {
	return a == ActionToggleMusic || a == ActionQueryLives
}

// EventKind tags an input event.
type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
)

// InputEvent is one item delivered by an input source poll.
type InputEvent struct {
	Kind   EventKind
	Action Action    // Set for EventKey
	At     time.Time // When the platform observed the key; zero if unknown
}

// KeyEvent builds a key event for an action.
func KeyEvent(a Action) InputEvent {
	return InputEvent{Kind: EventKey, Action: a}
}

// QuitEvent builds a quit event.
func QuitEvent() InputEvent {
	return InputEvent{Kind: EventQuit}
}

// Pan is the stereo placement of a cue.
type Pan int

const (
	PanCenter Pan = iota
	PanLeft
	PanRight
)

// String returns a human-readable name for the pan.
func (p Pan) String() string {
	switch p {
	case PanLeft:
		return "left"
	case PanRight:
		return "right"
	default:
		return "center"
	}
}
