package adapter_bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/core"
)

// Convert a Bubbletea key to a core.KeyEvent.
func convertBubbleKey(msg tea.KeyMsg) core.KeyEvent {
	key := core.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= core.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = core.KeyEnter
	case tea.KeySpace:
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = core.KeyEscape
	case tea.KeyBackspace:
		key.Key = core.KeyBackspace
	case tea.KeyTab:
		key.Key = core.KeyTab
		key.Rune = 0
	case tea.KeyUp:
		key.Key = core.KeyUp
	case tea.KeyDown:
		key.Key = core.KeyDown
	case tea.KeyLeft:
		key.Key = core.KeyLeft
	case tea.KeyRight:
		key.Key = core.KeyRight
	case tea.KeyHome:
		key.Key = core.KeyHome
	case tea.KeyEnd:
		key.Key = core.KeyEnd
	case tea.KeyDelete:
		key.Key = core.KeyDelete
	case tea.KeyPgUp:
		key.Key = core.KeyPageUp
	case tea.KeyPgDown:
		key.Key = core.KeyPageDown

	case tea.KeyCtrlS:
		key.Rune = 's'
		key.Modifiers |= core.ModCtrl
	case tea.KeyCtrlQ:
		key.Rune = 'q'
		key.Modifiers |= core.ModCtrl
	case tea.KeyCtrlZ:
		key.Rune = 'z'
		key.Modifiers |= core.ModCtrl
	case tea.KeyCtrlY:
		key.Rune = 'y'
		key.Modifiers |= core.ModCtrl
	case tea.KeyCtrlT:
		key.Rune = 't'
		key.Modifiers |= core.ModCtrl
	case tea.KeyCtrlV:
		key.Rune = 'v'
		key.Modifiers |= core.ModCtrl
	}

	return key
}
