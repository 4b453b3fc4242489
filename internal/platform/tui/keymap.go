package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kazarin/soulbox/internal/core"
)

// KeyMapper translates Bubble Tea key messages to battle actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	case "z", "enter":
		return core.ActionConfirm, false
	case "x", "esc":
		return core.ActionCancel, false
	}
	return core.ActionNone, false
}

// MenuMove is a menu-specific navigation action derived from input.
type MenuMove int

const (
	MenuMoveNone MenuMove = iota
	MenuMoveUp
	MenuMoveDown
	MenuMoveLeft
	MenuMoveRight
	MenuMoveConfirm
	MenuMoveBack
	MenuMoveQuit
)

// MapKeyToMenuMove translates a key to a menu navigation action.
func (km *KeyMapper) MapKeyToMenuMove(msg tea.KeyMsg) MenuMove {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuMoveQuit
	case "w", "up", "k":
		return MenuMoveUp
	case "s", "down", "j":
		return MenuMoveDown
	case "a", "left", "h":
		return MenuMoveLeft
	case "d", "right", "l":
		return MenuMoveRight
	case "z", "enter", " ":
		return MenuMoveConfirm
	case "x", "esc", "b":
		return MenuMoveBack
	}
	return MenuMoveNone
}
