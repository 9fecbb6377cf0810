package stats

// MultiCategory classifies a game by how many of the five tracked categories
// (points, assists, rebounds, steals, blocks) reached 10. A game carries
// exactly one label, the highest it qualifies for.
type MultiCategory int

const (
	None MultiCategory = iota
	DoubleDouble
	TripleDouble
	QuadrupleDouble
	QuintupleDouble
)

func (mc MultiCategory) String() string {
	switch mc {
	case DoubleDouble:
		return "double_double"
	case TripleDouble:
		return "triple_double"
	case QuadrupleDouble:
		return "quadruple_double"
	case QuintupleDouble:
		return "quintuple_double"
	default:
		return "none"
	}
}

func Classify(l StatLine) MultiCategory {
	switch categoryCount(l) {
	case 5:
		return QuintupleDouble
	case 4:
		return QuadrupleDouble
	case 3:
		return TripleDouble
	case 2:
		return DoubleDouble
	default:
		return None
	}
}

const categoryThreshold = 10

func categoryCount(l StatLine) int {
	count := 0
	for _, v := range [5]int{l.Points, l.Assists, l.Rebounds, l.Steals, l.Blocks} {
		if v >= categoryThreshold {
			count++
		}
	}
	return count
}
