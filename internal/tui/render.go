package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yahoozy/internal/game"
	"yahoozy/internal/history"
)

const appTitle = "Yahoozy — Yatzy not Yahtzee"

func (a *App) View() string {
	var body string
	switch a.state {
	case viewGame:
		body = a.renderGame()
	case viewGameOver:
		body = a.renderGameOver()
	default:
		body = a.renderRoster()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderNameModal()
	}
	return body + "\n\n" + a.renderFooter()
}

func (a *App) renderRoster() string {
	out := titleStyle.Render(appTitle) + "\n\n"
	out += titleStyle.Render("Players") + "\n"
	if a.roster.Len() == 0 {
		out += dimStyle.Render("  (no players)") + "\n"
	}
	for i, p := range a.roster.Players() {
		line := fmt.Sprintf("[%s]", p.Name)
		if i == a.rosterCursor && a.modal == modalNone {
			line = selectedStyle.Render(line)
		}
		out += "  " + line + "\n"
	}
	out += "\n" + a.renderTopScores()
	return out
}

func (a *App) renderGame() string {
	s := a.session
	out := titleStyle.Render("Current Player") + "   " + s.ActivePlayer().Name + "\n"
	if s.Phase() == game.PhaseRolling {
		out += titleStyle.Render("Rolls Remaining") + fmt.Sprintf("  %d/3\n", s.RollsLeft())
	}
	out += "\n"

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderSheet(),
		"      ",
		renderTally("Running Tally", s.Standings()),
	)
	out += main + "\n\n"
	out += a.renderDice()
	return out
}

func (a *App) renderGameOver() string {
	out := titleStyle.Render("Game Over!") + "\n\n"
	out += lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderTally("Final Results", a.session.Standings()),
		"      ",
		a.renderTopScores(),
	)
	return out
}

// renderSheet draws the active player's score sheet. While picking, every
// unfilled row shows the score the current roll would lock in.
func (a *App) renderSheet() string {
	s := a.session
	sheet := s.ActivePlayer().Sheet
	picking := s.Phase() == game.PhasePicking
	hl, hasHL := s.Highlighted()

	var cursorCat game.Category = -1
	if picking {
		if eligible := a.eligibleCategories(); a.pickCursor < len(eligible) {
			cursorCat = eligible[a.pickCursor]
		}
	}

	out := titleStyle.Render("Score Sheet") + "\n"
	for _, c := range game.Categories() {
		pts, taken := sheet.Get(c)
		row := fmt.Sprintf("%-15s", c.String())
		if taken {
			row += fmt.Sprintf("  %3d", pts)
		} else if picking {
			points, _ := s.Preview(c)
			row += fmt.Sprintf("    — → %2d", points)
		} else {
			row += "    —"
		}
		if picking {
			marker := "   "
			if !taken {
				marker = checkbox(hasHL && hl == c)
			}
			row = marker + " " + row
			switch {
			case c == cursorCat:
				row = selectedStyle.Render(row)
			case hasHL && hl == c:
				row = titleStyle.Render(row)
			}
		} else {
			row = "    " + row
		}
		out += row + "\n"
	}

	total := sheet.Total()
	totalRow := fmt.Sprintf("%-15s  %4d", "Total", total)
	if picking && hasHL {
		_, projected := s.Preview(hl)
		totalRow += fmt.Sprintf(" → %d", projected)
	}
	out += strings.Repeat("─", 25) + "\n" + titleStyle.Render(totalRow)
	return out
}

var dieFaces = [6][3]string{
	{"     ", "  ●  ", "     "},
	{"●    ", "     ", "    ●"},
	{"●    ", "  ●  ", "    ●"},
	{"●   ●", "     ", "●   ●"},
	{"●   ●", "  ●  ", "●   ●"},
	{"●   ●", "●   ●", "●   ●"},
}

func (a *App) renderDice() string {
	s := a.session
	rolling := s.Phase() == game.PhaseRolling
	boxes := make([]string, 0, game.DiceCount)
	for i, face := range s.Dice() {
		style := dieStyle
		if rolling && s.Selected(i) {
			style = dieMarkedStyle
		}
		box := style.Render(strings.Join(dieFaces[face-1][:], "\n"))
		if rolling {
			label := fmt.Sprintf("%s %d", checkbox(s.Selected(i)), i+1)
			box = lipgloss.JoinVertical(lipgloss.Center, box, dimStyle.Render(label))
		}
		boxes = append(boxes, box, " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderTally(title string, players []*game.Player) string {
	out := titleStyle.Render(title)
	for _, p := range players {
		out += fmt.Sprintf("\n%3d  %s", p.Sheet.Total(), p.Name)
	}
	return out
}

func (a *App) renderTopScores() string {
	out := titleStyle.Render(fmt.Sprintf("All-Time Top %d", a.cfg.UI.TopScores))
	top := history.Top(a.hist, a.cfg.UI.TopScores)
	if len(top) == 0 {
		return out + "\n" + dimStyle.Render("  (no games recorded yet)")
	}
	for _, e := range top {
		out += fmt.Sprintf("\n%3d  %s", e.Score, e.Name)
	}
	return out
}

func (a *App) renderNameModal() string {
	title := "Add Player"
	if a.modal == modalRenamePlayer {
		title = "Rename Player"
	}
	body := titleStyle.Render(title) + "\n" + a.nameInput.View() + "\n" +
		keyStyle.Render("enter") + " " + helpDescStyle.Render("save") + "  " +
		keyStyle.Render("esc") + " " + helpDescStyle.Render("cancel")
	return modalStyle.Render(body)
}

// renderFooter shows the last validation failure, if any, above the
// shortcuts for the current view.
func (a *App) renderFooter() string {
	out := ""
	if a.status != "" {
		out += diagStyle.Render(a.status+".") + "\n"
	}
	switch {
	case a.modal != modalNone:
		out += renderHelp(a.rosterKeys.ShortHelp())
	case a.state == viewGame && a.session.Phase() == game.PhasePicking:
		out += renderHelp(a.pickingKeys.ShortHelp())
	case a.state == viewGame:
		out += renderHelp(a.rollingKeys.ShortHelp())
	case a.state == viewGameOver:
		out += renderHelp(a.overKeys.ShortHelp())
	default:
		out += renderHelp(a.rosterKeys.ShortHelp())
	}
	return out
}

func checkbox(checked bool) string {
	if checked {
		return "[×]"
	}
	return "[ ]"
}
