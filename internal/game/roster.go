package game

import (
	"errors"
	"os/user"
	"strings"
	"unicode"
)

var (
	// ErrEmptyPlayerName rejects names that are empty after trimming.
	ErrEmptyPlayerName = errors.New("empty player name not allowed")
	// ErrNameTaken rejects duplicate names among active players.
	ErrNameTaken = errors.New("name already taken")
	// ErrBadPlayerName rejects names the history file cannot represent.
	ErrBadPlayerName = errors.New("player name contains a control character")
	// ErrNoPlayers rejects starting a game with an empty roster.
	ErrNoPlayers = errors.New("cannot start game with no players")
)

// Roster holds the players being assembled before a game starts. Once a
// session exists the roster must not change until the game is over.
type Roster struct {
	players []*Player
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// DefaultRoster seeds a roster with a single player named after the current
// login user, capitalized. name overrides the login lookup when non-empty.
func DefaultRoster(name string) *Roster {
	r := NewRoster()
	if name = strings.TrimSpace(name); name == "" {
		name = loginName()
	}
	if _, err := r.Add(name); err != nil {
		_, _ = r.Add("Player")
	}
	return r
}

// Players returns the roster in join order.
func (r *Roster) Players() []*Player {
	return r.players
}

// Len returns the number of players.
func (r *Roster) Len() int {
	return len(r.players)
}

// Add appends a new player after validating the name.
func (r *Roster) Add(name string) (*Player, error) {
	name, err := r.validate(name, -1)
	if err != nil {
		return nil, err
	}
	p := NewPlayer(name)
	r.players = append(r.players, p)
	return p, nil
}

// Rename changes the name of the player at index i. Keeping the current
// name is allowed.
func (r *Roster) Rename(i int, name string) error {
	if i < 0 || i >= len(r.players) {
		return ErrNoPlayers
	}
	name, err := r.validate(name, i)
	if err != nil {
		return err
	}
	r.players[i].Name = name
	return nil
}

// Remove drops the player at index i.
func (r *Roster) Remove(i int) {
	if i < 0 || i >= len(r.players) {
		return
	}
	r.players = append(r.players[:i], r.players[i+1:]...)
}

// ResetSheets gives every player a fresh sheet for a new game.
func (r *Roster) ResetSheets() {
	for _, p := range r.players {
		p.ResetSheet()
	}
}

// validate trims and checks a candidate name. self is the index of the
// player being renamed, or -1 when adding.
func (r *Roster) validate(name string, self int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyPlayerName
	}
	// The history file is line-oriented with a 0x1F field separator, so
	// names must not contain control characters.
	for _, ch := range name {
		if unicode.IsControl(ch) {
			return "", ErrBadPlayerName
		}
	}
	for i, p := range r.players {
		if i != self && p.Name == name {
			return "", ErrNameTaken
		}
	}
	return name, nil
}

func loginName() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "Player"
	}
	return capitalize(u.Username)
}

func capitalize(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
