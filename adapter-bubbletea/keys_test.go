package adapter_bubbletea

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"inkwell/core"
)

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{
			"printable rune",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}},
			core.KeyEvent{Rune: 'd'},
		},
		{
			"space",
			tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			core.KeyEvent{Rune: ' '},
		},
		{
			"escape",
			tea.KeyMsg{Type: tea.KeyEsc},
			core.KeyEvent{Key: core.KeyEscape},
		},
		{
			"enter",
			tea.KeyMsg{Type: tea.KeyEnter},
			core.KeyEvent{Key: core.KeyEnter},
		},
		{
			"arrow left",
			tea.KeyMsg{Type: tea.KeyLeft},
			core.KeyEvent{Key: core.KeyLeft},
		},
		{
			"page down",
			tea.KeyMsg{Type: tea.KeyPgDown},
			core.KeyEvent{Key: core.KeyPageDown},
		},
		{
			"ctrl+s",
			tea.KeyMsg{Type: tea.KeyCtrlS},
			core.KeyEvent{Rune: 's', Modifiers: core.ModCtrl},
		},
		{
			"ctrl+q",
			tea.KeyMsg{Type: tea.KeyCtrlQ},
			core.KeyEvent{Rune: 'q', Modifiers: core.ModCtrl},
		},
		{
			"alt modifier",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			core.KeyEvent{Rune: 'x', Modifiers: core.ModAlt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertBubbleKey(tt.msg); got != tt.want {
				t.Errorf("convertBubbleKey(%v) = %+v, want %+v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestConvertBubbleKeyTabCarriesNoRune(t *testing.T) {
	got := convertBubbleKey(tea.KeyMsg{Type: tea.KeyTab, Runes: []rune{'\t'}})
	if got.Key != core.KeyTab || got.Rune != 0 {
		t.Errorf("tab converted to %+v, want KeyTab with zero rune", got)
	}
}
