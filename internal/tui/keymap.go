package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the board key bindings. It implements help.KeyMap.
type keyMap struct {
	New    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Search key.Binding
	Grid   key.Binding
	List   key.Binding
	Tab    key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Esc    key.Binding
	Quit   key.Binding

	// Dialog
	NextField key.Binding
	PrevField key.Binding
	Check     key.Binding
	Save      key.Binding
	Submit    key.Binding
	Cancel    key.Binding

	// Delete confirmation
	Yes key.Binding
	No  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Grid:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		List:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "list")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar/board")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy title")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Esc:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/close")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Check:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle status")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save from title")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Yes: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "delete")),
		No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Toggle, k.Delete, k.Search, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Edit, k.Toggle, k.Delete, k.Copy},
		{k.Up, k.Down, k.Left, k.Right, k.Tab},
		{k.Search, k.Grid, k.List, k.Reload, k.Esc},
		{k.NextField, k.PrevField, k.Check, k.Save, k.Cancel},
		{k.Help, k.Quit},
	}
}

// dialogKeys is the footer help while the dialog is open.
type dialogKeys struct{ keyMap }

func (k dialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.NextField, k.Check, k.Cancel}
}

func (k dialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
