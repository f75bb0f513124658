package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapPlayingKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want game.Action
	}{
		{"w is north", runeKey("w"), game.ActionNorth},
		{"k is north", runeKey("k"), game.ActionNorth},
		{"up arrow is north", tea.KeyMsg{Type: tea.KeyUp}, game.ActionNorth},
		{"d is east", runeKey("d"), game.ActionEast},
		{"s is south", runeKey("s"), game.ActionSouth},
		{"a is west", runeKey("a"), game.ActionWest},
		{"h is west", runeKey("h"), game.ActionWest},
		{"q quits", runeKey("q"), game.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, game.ActionQuit},
		{"unknown key is ignored", runeKey("x"), game.ActionNone},
		{"n is not bound while playing", runeKey("n"), game.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapPlayingKey(tt.msg); got != tt.want {
				t.Errorf("MapPlayingKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapDialogKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want game.Action
	}{
		{"right raises difficulty", tea.KeyMsg{Type: tea.KeyRight}, game.ActionEast},
		{"greater-than raises difficulty", runeKey(">"), game.ActionEast},
		{"left lowers difficulty", tea.KeyMsg{Type: tea.KeyLeft}, game.ActionWest},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, game.ActionConfirm},
		{"y confirms", runeKey("y"), game.ActionConfirm},
		{"q quits", runeKey("q"), game.ActionQuit},
		{"n quits in dialogs", runeKey("n"), game.ActionQuit},
		{"w is not a dialog key", runeKey("w"), game.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapDialogKey(tt.msg); got != tt.want {
				t.Errorf("MapDialogKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
