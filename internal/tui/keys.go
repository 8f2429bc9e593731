package tui

import "github.com/charmbracelet/bubbles/key"

type rosterKeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Remove key.Binding
	Start  key.Binding
	UpDown key.Binding
	Quit   key.Binding
}

func newRosterKeyMap() rosterKeyMap {
	return rosterKeyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add player")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "rename")),
		Remove: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "remove")),
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start game")),
		UpDown: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k rosterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Remove, k.Start, k.UpDown, k.Quit}
}

type rollingKeyMap struct {
	Toggle  key.Binding
	MarkAll key.Binding
	Reroll  key.Binding
	KeepAll key.Binding
	Quit    key.Binding
}

func newRollingKeyMap() rollingKeyMap {
	return rollingKeyMap{
		Toggle:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "mark die")),
		MarkAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all")),
		Reroll:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reroll")),
		KeepAll: key.NewBinding(key.WithKeys("k", "enter"), key.WithHelp("k", "keep all")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k rollingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.MarkAll, k.Reroll, k.KeepAll, k.Quit}
}

type pickingKeyMap struct {
	UpDown  key.Binding
	Mark    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func newPickingKeyMap() pickingKeyMap {
	return pickingKeyMap{
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Mark:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select category")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k pickingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Mark, k.Confirm, k.Quit}
}

type gameOverKeyMap struct {
	NewGame key.Binding
	Quit    key.Binding
}

func newGameOverKeyMap() gameOverKeyMap {
	return gameOverKeyMap{
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k gameOverKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewGame, k.Quit}
}

func renderHelp(bindings []key.Binding) string {
	out := ""
	for i, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		if i != 0 {
			out += "  "
		}
		out += keyStyle.Render(h.Key) + " " + helpDescStyle.Render(h.Desc)
	}
	return out
}
