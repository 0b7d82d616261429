package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Add       key.Binding
	Quit      key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Cancel    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("A", "Add new download link")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Quit the terminal")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("Backspace", "Delete last character")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("ESC", "Close the dialog")),
	}
}

// MainHints lists the bindings shown in the footer on the main screen.
func (k keyMap) MainHints() []key.Binding {
	return []key.Binding{k.Quit, k.Add}
}

// DialogHints lists the bindings shown in the footer while the add dialog is open.
func (k keyMap) DialogHints() []key.Binding {
	return []key.Binding{k.Cancel, k.Submit}
}

func formatHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("(%s) %s", help.Key, help.Desc))
	}
	return strings.Join(parts, hintSeparator)
}
