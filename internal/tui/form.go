package tui

import (
	"github.com/jesseduffield/gocui"
)

// inputEditor feeds keystrokes into the task manager's pending input, which
// enforces the length cap.
type inputEditor struct {
	ui *UI
}

func (e *inputEditor) Edit(view *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
	ui := e.ui
	if ui == nil || !ui.editing {
		return false
	}
	ui.setInput(editValue(ui.manager.Input(), key, ch, mod))
	if view != nil {
		ui.renderInput(view)
	}
	return true
}

// searchEditor edits the ledger search query in place.
type searchEditor struct {
	ui *UI
}

func (e *searchEditor) Edit(view *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
	ui := e.ui
	if ui == nil || !ui.searchActive {
		return false
	}
	ui.searchValue = editValue(ui.searchValue, key, ch, mod)
	if view != nil {
		ui.renderSearch(view)
	}
	return true
}

func editValue(value string, key gocui.Key, ch rune, mod gocui.Modifier) string {
	switch key {
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		runes := []rune(value)
		if len(runes) > 0 {
			value = string(runes[:len(runes)-1])
		}
		return value
	case gocui.KeySpace:
		return value + " "
	case gocui.KeyCtrlU:
		return ""
	}

	if ch != 0 && ch != '\n' && ch != '\r' && mod == 0 {
		value += string(ch)
	}
	return value
}
