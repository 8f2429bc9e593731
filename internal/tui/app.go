// Package tui drives the full-screen game interface. The game engine in
// internal/game owns all rules; this package only issues its commands and
// renders its observable state.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"yahoozy/internal/config"
	"yahoozy/internal/dice"
	"yahoozy/internal/game"
	"yahoozy/internal/history"
)

// App ties together views.
type App struct {
	cfg    config.Config
	store  *history.Store
	roller *dice.Roller

	roster  *game.Roster
	session *game.Session
	hist    []history.Entry

	state        appState
	modal        modalState
	nameInput    textinput.Model
	renameIdx    int
	rosterCursor int
	pickCursor   int
	status       string
	width        int
	height       int

	rosterKeys  rosterKeyMap
	rollingKeys rollingKeyMap
	pickingKeys pickingKeyMap
	overKeys    gameOverKeyMap
}

type appState string

const (
	viewRoster   appState = "roster"
	viewGame     appState = "game"
	viewGameOver appState = "gameover"
)

type modalState string

const (
	modalNone         modalState = ""
	modalAddPlayer    modalState = "addPlayer"
	modalRenamePlayer modalState = "renamePlayer"
)

type historyMsg struct {
	entries []history.Entry
	err     error
}

type recordedMsg struct {
	entries []history.Entry
	err     error
}

// New builds the app over its collaborators.
func New(cfg config.Config, store *history.Store, roller *dice.Roller) *App {
	input := textinput.New()
	input.Placeholder = "Johnny Appleseed"
	input.CharLimit = 40
	return &App{
		cfg:         cfg,
		store:       store,
		roller:      roller,
		roster:      game.DefaultRoster(cfg.Player.DefaultName),
		state:       viewRoster,
		nameInput:   input,
		rosterKeys:  newRosterKeyMap(),
		rollingKeys: newRollingKeyMap(),
		pickingKeys: newPickingKeyMap(),
		overKeys:    newGameOverKeyMap(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadHistoryCmd()
}

func (a *App) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := a.store.Load()
		return historyMsg{entries: entries, err: err}
	}
}

// recordCmd merges the finished game into the persisted history. The whole
// file is rewritten in one pass.
func (a *App) recordCmd() tea.Cmd {
	finals := a.session.Finals()
	return func() tea.Msg {
		entries := make([]history.Entry, len(finals))
		for i, f := range finals {
			entries[i] = history.Entry{Score: f.Score, Name: f.Name}
		}
		merged, err := a.store.Record(entries)
		return recordedMsg{entries: merged, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case historyMsg:
		if m.err != nil {
			a.status = "history: " + m.err.Error()
			return a, nil
		}
		a.hist = m.entries
	case recordedMsg:
		if m.err != nil {
			a.status = "save history: " + m.err.Error()
			return a, nil
		}
		a.hist = m.entries
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.state {
		case viewRoster:
			return a.handleRosterKey(m)
		case viewGame:
			return a.handleGameKey(m)
		case viewGameOver:
			return a.handleGameOverKey(m)
		}
	}
	return a, nil
}

func (a *App) handleRosterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "a":
		a.openNameModal(modalAddPlayer, -1)
	case "enter":
		if a.roster.Len() > 0 {
			a.openNameModal(modalRenamePlayer, a.rosterCursor)
		}
	case "backspace":
		a.roster.Remove(a.rosterCursor)
		if a.rosterCursor >= a.roster.Len() && a.rosterCursor > 0 {
			a.rosterCursor--
		}
	case "up", "k":
		if a.rosterCursor > 0 {
			a.rosterCursor--
		}
	case "down", "j":
		if a.rosterCursor < a.roster.Len()-1 {
			a.rosterCursor++
		}
	case "s":
		return a.startGame()
	}
	return a, nil
}

func (a *App) startGame() (tea.Model, tea.Cmd) {
	a.roster.ResetSheets()
	session, err := game.NewSession(a.roster.Players(), a.roller)
	if err != nil {
		a.status = err.Error()
		return a, nil
	}
	a.session = session
	a.state = viewGame
	a.status = ""
	return a, nil
}

func (a *App) handleGameKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	}
	if a.session.Phase() == game.PhasePicking {
		return a.handlePickingKey(m)
	}
	return a.handleRollingKey(m)
}

func (a *App) handleRollingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "1", "2", "3", "4", "5":
		i := int(m.String()[0] - '1')
		if err := a.session.ToggleDie(i); err != nil {
			a.status = err.Error()
		}
	case "a":
		a.session.MarkAllDice()
	case "r":
		if err := a.session.Reroll(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = ""
	case "k", "enter":
		if err := a.session.EnterCategoryPick(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.pickCursor = 0
		a.status = ""
	}
	return a, nil
}

func (a *App) handlePickingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	eligible := a.eligibleCategories()
	switch m.String() {
	case "up", "k":
		if a.pickCursor > 0 {
			a.pickCursor--
		}
	case "down", "j":
		if a.pickCursor < len(eligible)-1 {
			a.pickCursor++
		}
	case " ":
		if a.pickCursor < len(eligible) {
			if err := a.session.ToggleCategoryHighlight(eligible[a.pickCursor]); err != nil {
				a.status = err.Error()
				return a, nil
			}
			a.status = ""
		}
	case "enter":
		if err := a.session.ConfirmCategory(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = ""
		if a.session.Phase() == game.PhaseGameOver {
			a.state = viewGameOver
			return a, a.recordCmd()
		}
		a.pickCursor = 0
	}
	return a, nil
}

func (a *App) handleGameOverKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "n":
		a.session = nil
		a.state = viewRoster
		a.rosterCursor = 0
		a.status = ""
	}
	return a, nil
}

func (a *App) openNameModal(kind modalState, idx int) {
	a.modal = kind
	a.renameIdx = idx
	a.status = ""
	if kind == modalRenamePlayer {
		a.nameInput.SetValue(a.roster.Players()[idx].Name)
	} else {
		a.nameInput.SetValue("")
	}
	a.nameInput.CursorEnd()
	a.nameInput.Focus()
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.closeNameModal()
		return a, nil
	case tea.KeyEnter:
		name := a.nameInput.Value()
		var err error
		if a.modal == modalRenamePlayer {
			err = a.roster.Rename(a.renameIdx, name)
		} else {
			_, err = a.roster.Add(name)
		}
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.closeNameModal()
		return a, nil
	}
	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(m)
	return a, cmd
}

func (a *App) closeNameModal() {
	a.modal = modalNone
	a.nameInput.Blur()
	a.status = ""
}

// eligibleCategories lists the active player's unfilled categories in
// declaration order; only these are offered in the picker.
func (a *App) eligibleCategories() []game.Category {
	sheet := a.session.ActivePlayer().Sheet
	var out []game.Category
	for _, c := range game.Categories() {
		if _, taken := sheet.Get(c); !taken {
			out = append(out, c)
		}
	}
	return out
}
