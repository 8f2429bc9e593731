package game

import "errors"

// ErrAlreadyScored is returned when a category is scored a second time.
var ErrAlreadyScored = errors.New("category already scored")

const (
	// UpperBonus is awarded once the upper section reaches the threshold.
	UpperBonus          = 50
	upperBonusThreshold = 63
)

// ScoreSheet records the points a player has locked in per category. A
// category is present at most once and immutable once present.
type ScoreSheet map[Category]int

// NewScoreSheet returns an empty sheet.
func NewScoreSheet() ScoreSheet {
	return make(ScoreSheet, CategoryCount)
}

// Get returns the locked-in score for c and whether c has been scored.
func (s ScoreSheet) Get(c Category) (int, bool) {
	pts, ok := s[c]
	return pts, ok
}

// Set locks in points for c. It fails with ErrAlreadyScored if c is already
// present, leaving the sheet unchanged.
func (s ScoreSheet) Set(c Category, points int) error {
	if _, ok := s[c]; ok {
		return ErrAlreadyScored
	}
	s[c] = points
	return nil
}

// UpperTotal sums the scored upper-section categories.
func (s ScoreSheet) UpperTotal() int {
	sum := 0
	for c, pts := range s {
		if c.Upper() {
			sum += pts
		}
	}
	return sum
}

// Bonus returns the upper-section bonus earned so far.
func (s ScoreSheet) Bonus() int {
	if s.UpperTotal() >= upperBonusThreshold {
		return UpperBonus
	}
	return 0
}

// Total returns the running score: both sections plus the bonus. Missing
// categories contribute nothing.
func (s ScoreSheet) Total() int {
	sum := s.Bonus()
	for _, pts := range s {
		sum += pts
	}
	return sum
}

// Complete reports whether every category has been scored.
func (s ScoreSheet) Complete() bool {
	return len(s) == CategoryCount
}
