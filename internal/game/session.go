package game

import (
	"errors"
	"sort"

	"yahoozy/internal/dice"
)

// RerollsPerTurn is how many rerolls follow the free opening roll.
const RerollsPerTurn = 2

// Phase is the session's position in the turn state machine.
type Phase int

const (
	// PhaseRolling: dice visible, player may select dice and reroll.
	PhaseRolling Phase = iota
	// PhasePicking: dice frozen, player highlights a category and confirms.
	PhasePicking
	// PhaseGameOver: terminal; every player has a complete sheet.
	PhaseGameOver
)

var (
	// ErrNoRollsLeft rejects a reroll once the turn's rolls are spent.
	ErrNoRollsLeft = errors.New("no more rolls remaining")
	// ErrNoDiceSelected rejects a reroll with nothing marked.
	ErrNoDiceSelected = errors.New("no dice selected to reroll")
	// ErrNoCategorySelected rejects confirming without a highlight.
	ErrNoCategorySelected = errors.New("no category selected")
	// ErrWrongPhase rejects a command issued outside its phase.
	ErrWrongPhase = errors.New("command not valid in this phase")
	// ErrDieOutOfRange rejects a die index outside 0..4.
	ErrDieOutOfRange = errors.New("die index out of range")
)

// Session owns one game: the player rotation, the active turn's dice and
// reroll selection, and the turn state machine. All engine failures are
// recoverable validation errors that leave the session unchanged.
type Session struct {
	players []*Player
	cursor  int
	roller  *dice.Roller

	dice      Roll
	selected  [DiceCount]bool
	rollsLeft int

	phase        Phase
	highlight    Category
	hasHighlight bool
}

// NewSession starts a game over a fixed, non-empty player order and rolls
// the first turn's dice.
func NewSession(players []*Player, roller *dice.Roller) (*Session, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	s := &Session{
		players: append([]*Player(nil), players...),
		roller:  roller,
	}
	s.startTurn()
	return s, nil
}

func (s *Session) startTurn() {
	for i := range s.dice {
		s.dice[i] = s.roller.Roll(6)
	}
	s.selected = [DiceCount]bool{}
	s.rollsLeft = RerollsPerTurn
	s.highlight = 0
	s.hasHighlight = false
	s.phase = PhaseRolling
}

// Dice returns the current roll.
func (s *Session) Dice() Roll {
	return s.dice
}

// Selected reports whether die i is marked for rerolling.
func (s *Session) Selected(i int) bool {
	if i < 0 || i >= DiceCount {
		return false
	}
	return s.selected[i]
}

// RollsLeft returns how many rerolls remain this turn.
func (s *Session) RollsLeft() int {
	return s.rollsLeft
}

// Phase returns the current state-machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// ActivePlayer returns whose turn it is.
func (s *Session) ActivePlayer() *Player {
	return s.players[s.cursor]
}

// Players returns the session's players in turn order.
func (s *Session) Players() []*Player {
	return s.players
}

// Standings returns the players ordered by total descending. The sort is
// stable, so ties keep their turn-order position.
func (s *Session) Standings() []*Player {
	out := append([]*Player(nil), s.players...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sheet.Total() > out[j].Sheet.Total()
	})
	return out
}

// Highlighted returns the highlighted category, if any.
func (s *Session) Highlighted() (Category, bool) {
	return s.highlight, s.hasHighlight
}

// Preview returns the points the current roll would score in c for the
// active player, and the player's projected total with that entry added
// (including any bonus it would trigger).
func (s *Session) Preview(c Category) (points, total int) {
	points = Score(c, s.dice)
	sheet := NewScoreSheet()
	for cat, pts := range s.ActivePlayer().Sheet {
		sheet[cat] = pts
	}
	_ = sheet.Set(c, points)
	return points, sheet.Total()
}

// ToggleDie flips die i's membership in the reroll selection.
func (s *Session) ToggleDie(i int) error {
	if s.phase != PhaseRolling {
		return ErrWrongPhase
	}
	if i < 0 || i >= DiceCount {
		return ErrDieOutOfRange
	}
	s.selected[i] = !s.selected[i]
	return nil
}

// MarkAllDice selects every die for rerolling.
func (s *Session) MarkAllDice() {
	if s.phase != PhaseRolling {
		return
	}
	for i := range s.selected {
		s.selected[i] = true
	}
}

// Reroll redraws every selected die and clears the selection. One reroll
// costs exactly one roll, no matter how many dice were marked.
func (s *Session) Reroll() error {
	if s.phase != PhaseRolling {
		return ErrWrongPhase
	}
	if s.rollsLeft == 0 {
		return ErrNoRollsLeft
	}
	if s.selected == [DiceCount]bool{} {
		return ErrNoDiceSelected
	}
	for i, sel := range s.selected {
		if sel {
			s.dice[i] = s.roller.Roll(6)
			s.selected[i] = false
		}
	}
	s.rollsLeft--
	return nil
}

// EnterCategoryPick freezes the dice and moves to category selection,
// clearing any prior highlight.
func (s *Session) EnterCategoryPick() error {
	if s.phase != PhaseRolling {
		return ErrWrongPhase
	}
	s.hasHighlight = false
	s.phase = PhasePicking
	return nil
}

// ToggleCategoryHighlight highlights c as the scoring target. Only unfilled
// categories are eligible; a filled one is rejected even though the driver
// should never offer it.
func (s *Session) ToggleCategoryHighlight(c Category) error {
	if s.phase != PhasePicking {
		return ErrWrongPhase
	}
	if _, taken := s.ActivePlayer().Sheet.Get(c); taken {
		return ErrAlreadyScored
	}
	s.highlight = c
	s.hasHighlight = true
	return nil
}

// ConfirmCategory scores the highlighted category for the active player and
// advances the round: the cursor rotates to the next player and a fresh turn
// begins. The game ends exactly when control would cycle back to the first
// player and that player's sheet is already complete.
func (s *Session) ConfirmCategory() error {
	if s.phase != PhasePicking {
		return ErrWrongPhase
	}
	if !s.hasHighlight {
		return ErrNoCategorySelected
	}
	if err := s.ActivePlayer().Sheet.Set(s.highlight, Score(s.highlight, s.dice)); err != nil {
		return err
	}
	s.cursor = (s.cursor + 1) % len(s.players)
	if s.cursor == 0 && s.players[0].Sheet.Complete() {
		s.phase = PhaseGameOver
		return nil
	}
	s.startTurn()
	return nil
}

// Finals returns each player's name and final total, in turn order.
func (s *Session) Finals() []Final {
	out := make([]Final, len(s.players))
	for i, p := range s.players {
		out[i] = Final{Name: p.Name, Score: p.Sheet.Total()}
	}
	return out
}

// Final is one finished player's result.
type Final struct {
	Name  string
	Score int
}
