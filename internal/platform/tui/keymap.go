package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// buttonHelp is the help text shown for each button.
var buttonHelp = [core.ButtonCount]string{
	core.ButtonUp:    "right paddle up",
	core.ButtonDown:  "right paddle down",
	core.ButtonW:     "left paddle up",
	core.ButtonS:     "left paddle down",
	core.ButtonLeft:  "menu left",
	core.ButtonRight: "menu right",
	core.ButtonEnter: "start",
}

// KeyMap translates Bubble Tea key messages to game buttons and
// frontend commands. It also feeds the help line.
type KeyMap struct {
	Buttons    [core.ButtonCount]key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.KeyConfig) KeyMap {
	var km KeyMap
	for i, names := range keys.Bindings() {
		km.Buttons[i] = key.NewBinding(
			key.WithKeys(names...),
			key.WithHelp(strings.Join(names, "/"), buttonHelp[i]),
		)
	}
	km.Screenshot = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "screenshot"),
	)
	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	return km
}

// Button returns the button a key message drives, if any.
func (km KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	for i, b := range km.Buttons {
		if key.Matches(msg, b) {
			return core.Button(i), true
		}
	}
	return 0, false
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.Buttons[core.ButtonUp],
		km.Buttons[core.ButtonDown],
		km.Buttons[core.ButtonW],
		km.Buttons[core.ButtonS],
		km.Help,
		km.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Buttons[core.ButtonUp], km.Buttons[core.ButtonDown], km.Buttons[core.ButtonW], km.Buttons[core.ButtonS]},
		{km.Buttons[core.ButtonLeft], km.Buttons[core.ButtonRight], km.Buttons[core.ButtonEnter]},
		{km.Screenshot, km.Help, km.Quit},
	}
}
