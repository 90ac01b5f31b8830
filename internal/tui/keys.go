package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Navigation
	Up       Key
	Down     Key
	PageUp   Key
	PageDown Key
	Home     Key
	End      Key

	// Views
	NextTab Key
	PrevTab Key

	// Selectors
	NextBranch Key
	PrevBranch Key
	NextItem   Key
	PrevItem   Key
	Reset      Key

	// Actions
	Export Key
	Quit   Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: Key{
			Keys:    []string{"up", "k"},
			Help:    "up",
			Enabled: true,
		},
		Down: Key{
			Keys:    []string{"down", "j"},
			Help:    "down",
			Enabled: true,
		},
		PageUp: Key{
			Keys:    []string{"pgup", "ctrl+u"},
			Help:    "page up",
			Enabled: true,
		},
		PageDown: Key{
			Keys:    []string{"pgdown", "ctrl+d"},
			Help:    "page down",
			Enabled: true,
		},
		Home: Key{
			Keys:    []string{"home", "g"},
			Help:    "top",
			Enabled: true,
		},
		End: Key{
			Keys:    []string{"end", "G"},
			Help:    "bottom",
			Enabled: true,
		},

		NextTab: Key{
			Keys:    []string{"tab", "right", "l"},
			Help:    "next view",
			Enabled: true,
		},
		PrevTab: Key{
			Keys:    []string{"shift+tab", "left", "h"},
			Help:    "prev view",
			Enabled: true,
		},

		NextBranch: Key{
			Keys:    []string{"b"},
			Help:    "branch",
			Enabled: true,
		},
		PrevBranch: Key{
			Keys:    []string{"B"},
			Help:    "prev branch",
			Enabled: true,
		},
		NextItem: Key{
			Keys:    []string{"i"},
			Help:    "item",
			Enabled: true,
		},
		PrevItem: Key{
			Keys:    []string{"I"},
			Help:    "prev item",
			Enabled: true,
		},
		Reset: Key{
			Keys:    []string{"r"},
			Help:    "clear filters",
			Enabled: true,
		},

		Export: Key{
			Keys:    []string{"e"},
			Help:    "export",
			Enabled: true,
		},
		Quit: Key{
			Keys:    []string{"q", "ctrl+c", "esc"},
			Help:    "quit",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsNavigation checks if the key message moves the table selection.
func (km KeyMap) IsNavigation(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.Up, km.Down, km.PageUp, km.PageDown, km.Home, km.End)
}

// IsSelector checks if the key message changes a filter selector.
func (km KeyMap) IsSelector(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.NextBranch, km.PrevBranch, km.NextItem, km.PrevItem, km.Reset)
}

// ShortHelp lists the bindings shown in the footer.
func (km KeyMap) ShortHelp() []Key {
	return []Key{km.NextTab, km.NextBranch, km.NextItem, km.Reset, km.Export, km.Quit}
}
