package stats

import "math"

// GameScore is Hollinger's game score. With only a combined rebound figure
// available, the offensive/defensive rebound terms collapse to 0.3 per
// rebound. Rounded to 1 decimal place.
func GameScore(l StatLine) float64 {
	score := float64(l.Points) +
		0.4*float64(l.FieldGoalsMade) -
		0.7*float64(l.FieldGoalsAttempted) -
		0.4*float64(l.FreeThrowsAttempted-l.FreeThrowsMade) +
		0.3*float64(l.Rebounds) +
		float64(l.Steals) +
		0.7*float64(l.Assists) +
		0.7*float64(l.Blocks) -
		0.4*float64(l.Fouls) -
		float64(l.Turnovers)
	return round1(score)
}

// Efficiency is the NBA efficiency rating: positive box-score contributions
// minus missed shots and turnovers. Rounded to 1 decimal place.
func Efficiency(l StatLine) float64 {
	eff := l.Points + l.Rebounds + l.Assists + l.Steals + l.Blocks -
		((l.FieldGoalsAttempted - l.FieldGoalsMade) +
			(l.FreeThrowsAttempted - l.FreeThrowsMade) +
			l.Turnovers)
	return round1(float64(eff))
}

// PerformanceScore is the league's weighted rating, plus a bonus for
// multi-category games, floored at zero. Rounded to 2 decimal places.
func PerformanceScore(l StatLine) float64 {
	score := float64(l.Points) +
		0.5*float64(l.Assists) +
		0.3*float64(l.Rebounds) +
		1.5*float64(l.Steals) +
		1.5*float64(l.Blocks) -
		0.5*float64(l.Turnovers) +
		0.5*float64(l.ThreePointsMade)

	score += PerformanceBonus(l)

	if score < 0 {
		score = 0
	}
	return round2(score)
}

// PerformanceBonus is the multi-category bonus folded into PerformanceScore:
// +10 for three or more categories at 10+, +5 for exactly two, else 0. It is
// a flat two-tier bonus, coarser than the full Classify ladder.
func PerformanceBonus(l StatLine) float64 {
	switch n := categoryCount(l); {
	case n >= 3:
		return 10.0
	case n == 2:
		return 5.0
	default:
		return 0.0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
