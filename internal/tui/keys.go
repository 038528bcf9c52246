package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevLane   key.Binding
	NextLane   key.Binding
	Up         key.Binding
	Down       key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	NewNote    key.Binding
	NewLane    key.Binding
	Edit       key.Binding
	Rename     key.Binding
	DeleteNote key.Binding
	DeleteLane key.Binding
	Prune      key.Binding
	Jump       key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PrevLane:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "switch lane")),
		NextLane:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("", "")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "select note")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("", "")),
		MoveLeft:   key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H/L", "move note")),
		MoveRight:  key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("", "")),
		NewNote:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
		NewLane:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new lane")),
		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit note")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename lane")),
		DeleteNote: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete note")),
		DeleteLane: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete lane")),
		Prune:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prune orphans")),
		Jump:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevLane, k.Up, k.MoveLeft, k.NewNote, k.Edit, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevLane, k.Up, k.MoveLeft, k.Jump},
		{k.NewNote, k.NewLane, k.Edit, k.Rename},
		{k.DeleteNote, k.DeleteLane, k.Prune, k.Quit},
	}
}
