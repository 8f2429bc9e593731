package game

// Category identifies one of the fifteen rows on a score sheet. Declaration
// order is significant: it is the display order and the order used for
// index-based selection in the category picker.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	OnePair
	TwoPairs
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	FullHouse
	Chance
	Yatzy
)

// CategoryCount is the number of rows on a full score sheet.
const CategoryCount = int(Yatzy) + 1

var categoryNames = [CategoryCount]string{
	"Ones",
	"Twos",
	"Threes",
	"Fours",
	"Fives",
	"Sixes",
	"One Pair",
	"Two Pairs",
	"Three of a Kind",
	"Four of a Kind",
	"Small Straight",
	"Large Straight",
	"Full House",
	"Chance",
	"Yatzy",
}

func (c Category) String() string {
	if c < 0 || int(c) >= CategoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// Upper reports whether c belongs to the upper section (Ones through Sixes),
// the section whose subtotal earns the bonus.
func (c Category) Upper() bool {
	return c >= Ones && c <= Sixes
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}
