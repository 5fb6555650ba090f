package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typeracer/internal/core"
)

// KeyMap holds the platform bindings. Typing keys are not listed here:
// they go straight to the game through TranslateKey.
type KeyMap struct {
	Type        key.Binding
	Erase       key.Binding
	ExtraLife   key.Binding
	RemoveWords key.Binding
	SlowSpawn   key.Binding
	VolumeUp    key.Binding
	VolumeDown  key.Binding
	Info        key.Binding
	Restart     key.Binding
	Leave       key.Binding
	Quit        key.Binding
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Type, k.Erase},
		{k.ExtraLife, k.RemoveWords, k.SlowSpawn},
		{k.VolumeUp, k.VolumeDown, k.Info, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
// Terminals cannot tell the numpad apart, so volume down sits on
// underscore to leave the hyphen free for typing.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Type: key.NewBinding(
			key.WithKeys("a", "A", "-"),
			key.WithHelp("a-z A-Z -", "type"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		ExtraLife: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "extra life"),
		),
		RemoveWords: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "remove words"),
		),
		SlowSpawn: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "slow spawn"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("_"),
			key.WithHelp("_", "volume down"),
		),
		Info: key.NewBinding(
			key.WithKeys("`"),
			key.WithHelp("`", "info"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R", "enter"),
			key.WithHelp("r", "restart"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// splitRunes breaks a multi-rune key message into one message per rune.
// Other messages come back unchanged.
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 {
		return []tea.KeyMsg{msg}
	}
	keys := make([]tea.KeyMsg, len(msg.Runes))
	for i, r := range msg.Runes {
		keys[i] = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
	}
	return keys
}

// TranslateKey maps a single terminal key press to the game key it stands
// for. Only keys the simulation consumes are translated; bursts go through
// splitRunes first.
func TranslateKey(msg tea.KeyMsg) (core.KeyEvent, bool) {
	if msg.Type == tea.KeyBackspace {
		return core.KeyEvent{Key: core.KeyBackspace}, true
	}
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return core.KeyEvent{}, false
	}

	r := msg.Runes[0]
	switch {
	case r >= 'a' && r <= 'z':
		return core.KeyEvent{Key: core.KeyA + core.Key(r-'a')}, true
	case r >= 'A' && r <= 'Z':
		return core.KeyEvent{Key: core.KeyA + core.Key(r-'A'), Shift: true}, true
	}

	switch r {
	case '-':
		return core.KeyEvent{Key: core.KeyMinus}, true
	case '1':
		return core.KeyEvent{Key: core.KeyDigit1}, true
	case '2':
		return core.KeyEvent{Key: core.KeyDigit2}, true
	case '3':
		return core.KeyEvent{Key: core.KeyDigit3}, true
	}
	return core.KeyEvent{}, false
}
