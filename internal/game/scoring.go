package game

// DiceCount is the number of dice in a roll.
const DiceCount = 5

// Roll is the five visible die faces of a single turn.
type Roll [DiceCount]int

// Sum returns the face total of the roll.
func (r Roll) Sum() int {
	s := 0
	for _, d := range r {
		s += d
	}
	return s
}

// counts returns how many dice show each face, indexed by face value.
func (r Roll) counts() [7]int {
	var c [7]int
	for _, d := range r {
		if d >= 1 && d <= 6 {
			c[d]++
		}
	}
	return c
}

// highestFace returns the highest face appearing at least min times, or 0.
func (r Roll) highestFace(min int) int {
	c := r.counts()
	for face := 6; face >= 1; face-- {
		if c[face] >= min {
			return face
		}
	}
	return 0
}

// Score returns the points the roll is worth in the given category. It is
// pure and defined for every category/roll combination; a roll that does not
// qualify scores zero.
func Score(c Category, r Roll) int {
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := int(c) + 1
		return r.counts()[face] * face
	case OnePair:
		return r.highestFace(2) * 2
	case TwoPairs:
		counts := r.counts()
		pairs := 0
		sum := 0
		for face := 6; face >= 1; face-- {
			if counts[face] >= 2 {
				pairs++
				sum += face
				if pairs == 2 {
					return sum * 2
				}
			}
		}
		return 0
	case ThreeOfAKind:
		return r.highestFace(3) * 3
	case FourOfAKind:
		return r.highestFace(4) * 4
	case SmallStraight:
		if r.isStraight(1, 5) {
			return 15
		}
		return 0
	case LargeStraight:
		if r.isStraight(2, 6) {
			return 20
		}
		return 0
	case FullHouse:
		// A five-of-a-kind does not qualify: no face has count exactly 2.
		counts := r.counts()
		pair, triple := 0, 0
		for face := 1; face <= 6; face++ {
			switch counts[face] {
			case 2:
				pair = face
			case 3:
				triple = face
			}
		}
		if pair != 0 && triple != 0 {
			return r.Sum()
		}
		return 0
	case Chance:
		return r.Sum()
	case Yatzy:
		if r.highestFace(5) != 0 {
			return 50
		}
		return 0
	}
	return 0
}

// isStraight reports whether the face set is exactly {lo..hi}.
func (r Roll) isStraight(lo, hi int) bool {
	counts := r.counts()
	for face := lo; face <= hi; face++ {
		if counts[face] != 1 {
			return false
		}
	}
	return true
}
