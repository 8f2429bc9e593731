package game

import "github.com/google/uuid"

// Player is one participant: a display name and the sheet it owns for the
// duration of a game.
type Player struct {
	ID    string
	Name  string
	Sheet ScoreSheet
}

// NewPlayer creates a player with a fresh empty sheet.
func NewPlayer(name string) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Name:  name,
		Sheet: NewScoreSheet(),
	}
}

// ResetSheet discards the player's sheet so the player can be reused in a
// new game.
func (p *Player) ResetSheet() {
	p.Sheet = NewScoreSheet()
}
