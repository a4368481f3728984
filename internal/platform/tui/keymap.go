package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockpuzzle/internal/core"
)

// KeyMap defines the key bindings of the puzzle screen. It translates Bubble
// Tea key messages to actions and feeds the help bar.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Slot1   key.Binding
	Slot2   key.Binding
	Slot3   key.Binding
	Parking key.Binding
	Place   key.Binding
	Park    key.Binding
	Rotate  key.Binding
	NewGame key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Scores  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Slot1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-3", "select/rotate piece"),
		),
		Slot2: key.NewBinding(key.WithKeys("2")),
		Slot3: key.NewBinding(key.WithKeys("3")),
		Parking: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "parked piece"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		Park: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "park"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotating mode"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "high scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Slot1, k.Place, k.Park, k.Rotate, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Slot1, k.Parking, k.Place, k.Park},
		{k.Rotate, k.NewGame, k.Scores, k.Quit},
	}
}

// Action translates a key message to a puzzle action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Slot1):
		return core.ActionSelect1
	case key.Matches(msg, k.Slot2):
		return core.ActionSelect2
	case key.Matches(msg, k.Slot3):
		return core.ActionSelect3
	case key.Matches(msg, k.Parking):
		return core.ActionSelectParking
	case key.Matches(msg, k.Place):
		return core.ActionPlace
	case key.Matches(msg, k.Park):
		return core.ActionPark
	case key.Matches(msg, k.Rotate):
		return core.ActionToggleRotate
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	}
	return core.ActionNone
}
