package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable. The same physical
// key can mean different things while playing and inside a dialog, so the
// two modes map separately.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapPlayingKey translates a key pressed during gameplay. Unrecognized
// keys yield ActionNone and are simply ignored.
func (km *KeyMapper) MapPlayingKey(msg tea.KeyMsg) game.Action {
	switch msg.String() {
	case "w", "k", "up":
		return game.ActionNorth
	case "d", "l", "right":
		return game.ActionEast
	case "s", "j", "down":
		return game.ActionSouth
	case "a", "h", "left":
		return game.ActionWest
	case "q", "ctrl+c":
		return game.ActionQuit
	}
	return game.ActionNone
}

// MapDialogKey translates a key pressed while a modal dialog is active.
// East/West adjust the difficulty; n quits here, unlike during gameplay.
func (km *KeyMapper) MapDialogKey(msg tea.KeyMsg) game.Action {
	switch msg.String() {
	case "d", "l", "right", ">":
		return game.ActionEast
	case "a", "h", "left", "<":
		return game.ActionWest
	case "enter", "y":
		return game.ActionConfirm
	case "q", "n", "ctrl+c":
		return game.ActionQuit
	}
	return game.ActionNone
}
