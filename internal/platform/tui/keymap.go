package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blindrace/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	DodgeLeft   key.Binding
	DodgeRight  key.Binding
	DodgeCenter key.Binding
	DodgeAbove  key.Binding
	Break       key.Binding
	ToggleMusic key.Binding
	QueryLives  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DodgeLeft, k.DodgeRight, k.DodgeCenter, k.DodgeAbove, k.Break, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DodgeLeft, k.DodgeRight, k.DodgeCenter, k.DodgeAbove, k.Break},
		{k.ToggleMusic, k.QueryLives, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
// A bare Ctrl press never reaches a terminal program, so Break also
// answers to Space, Enter and Ctrl+Space.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		DodgeLeft: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "dodge left obstacle"),
		),
		DodgeRight: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "dodge right obstacle"),
		),
		DodgeCenter: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "jump center obstacle"),
		),
		DodgeAbove: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "duck obstacle above"),
		),
		Break: key.NewBinding(
			key.WithKeys(" ", "space", "enter", "ctrl+@"),
			key.WithHelp("space", "break box"),
		),
		ToggleMusic: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "music on/off"),
		),
		QueryLives: key.NewBinding(
			key.WithKeys("v", "V"),
			key.WithHelp("v", "lives"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings shared by menus and pages.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	First  key.Binding
	Last   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to engine input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game: DefaultGameKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to an input event.
// Returns false for keys the game does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.InputEvent, bool) {
	if key.Matches(msg, km.Game.Quit) {
		return core.QuitEvent(), true
	}

	var action core.Action
	switch {
	case key.Matches(msg, km.Game.DodgeLeft):
		action = core.ActionDodgeLeft
	case key.Matches(msg, km.Game.DodgeRight):
		action = core.ActionDodgeRight
	case key.Matches(msg, km.Game.DodgeCenter):
		action = core.ActionDodgeCenter
	case key.Matches(msg, km.Game.DodgeAbove):
		action = core.ActionDodgeAbove
	case key.Matches(msg, km.Game.Break):
		action = core.ActionBreak
	case key.Matches(msg, km.Game.ToggleMusic):
		action = core.ActionToggleMusic
	case key.Matches(msg, km.Game.QueryLives):
		action = core.ActionQueryLives
	default:
		return core.InputEvent{}, false
	}
	return core.KeyEvent(action), true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionFirst
	MenuActionLast
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.Menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.Menu.First):
		return MenuActionFirst
	case key.Matches(msg, km.Menu.Last):
		return MenuActionLast
	case key.Matches(msg, km.Menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Menu.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
