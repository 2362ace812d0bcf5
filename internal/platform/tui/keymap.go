package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starline/internal/editor"
	"github.com/vovakirdan/starline/internal/game"
)

// KeyMap defines the key bindings shown in the help line.
type KeyMap struct {
	Launch      key.Binding
	Help        key.Binding
	Quit        key.Binding
	Rewind      key.Binding
	ClearAll    key.Binding
	Collectible key.Binding
	Save        key.Binding

	editor bool
}

// DefaultKeyMap returns the bindings for play or editor mode.
func DefaultKeyMap(editorMode bool) KeyMap {
	return KeyMap{
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Rewind: key.NewBinding(
			key.WithKeys(editor.KeyRewind),
			key.WithHelp(editor.KeyRewind, "rewind stroke"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys(editor.KeyClearAll),
			key.WithHelp(editor.KeyClearAll, "clear all"),
		),
		Collectible: key.NewBinding(
			key.WithKeys(editor.KeyCollectible),
			key.WithHelp(editor.KeyCollectible, "place star"),
		),
		Save: key.NewBinding(
			key.WithKeys(editor.KeySave),
			key.WithHelp(editor.KeySave, "save"),
		),
		editor: editorMode,
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.editor {
		return []key.Binding{k.Collectible, k.Rewind, k.Save, k.Help, k.Quit}
	}
	return []key.Binding{k.Launch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	mouse := []key.Binding{
		key.NewBinding(key.WithHelp("left drag", "draw")),
		key.NewBinding(key.WithHelp("right drag", "erase")),
	}
	if k.editor {
		mouse[0] = key.NewBinding(key.WithHelp("left drag", "record"))
		mouse[1] = key.NewBinding(key.WithHelp("drag ball", "move start"))
		return [][]key.Binding{
			mouse,
			{k.Collectible, k.Rewind, k.ClearAll},
			{k.Launch, k.Save, k.Quit},
		}
	}
	return [][]key.Binding{mouse, {k.Launch, k.Help, k.Quit}}
}

// gameKey translates a terminal key to the name the game and editor use.
func gameKey(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return game.KeyLaunch
	}
	return msg.String()
}

// mouseEvents translates a terminal mouse message to game events in
// camera pixels. Wheel and middle-button messages yield nothing. Terminals
// that cannot tell which button was released report none, so that releases
// both.
func (r *Renderer) mouseEvents(msg tea.MouseMsg) []game.Event {
	x, y := r.CellToCamera(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		return []game.Event{game.PointerMoved{X: x, Y: y}}
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return []game.Event{game.PointerMoved{X: x, Y: y}, game.PointerDown{Button: game.ButtonLeft, X: x, Y: y}}
		case tea.MouseButtonRight:
			return []game.Event{game.PointerMoved{X: x, Y: y}, game.PointerDown{Button: game.ButtonRight, X: x, Y: y}}
		}
	case tea.MouseActionRelease:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return []game.Event{game.PointerUp{Button: game.ButtonLeft, X: x, Y: y}}
		case tea.MouseButtonRight:
			return []game.Event{game.PointerUp{Button: game.ButtonRight, X: x, Y: y}}
		case tea.MouseButtonNone:
			return []game.Event{
				game.PointerUp{Button: game.ButtonLeft, X: x, Y: y},
				game.PointerUp{Button: game.ButtonRight, X: x, Y: y},
			}
		}
	}
	return nil
}
