package stats

// Career is the rollup of every game a player has played. It is always
// produced whole by AggregateCareer and replaces any previous rollup;
// nothing patches it incrementally.
type Career struct {
	GamesPlayed      int      `json:"games_played"`
	Totals           StatLine `json:"totals"`
	FieldGoalPct     float64  `json:"field_goal_pct"`
	ThreePointPct    float64  `json:"three_point_pct"`
	FreeThrowPct     float64  `json:"free_throw_pct"`
	Averages         Averages `json:"averages"`
	Highs            Highs    `json:"highs"`
	DoubleDoubles    int      `json:"double_doubles"`
	TripleDoubles    int      `json:"triple_doubles"`
	QuadrupleDoubles int      `json:"quadruple_doubles"`
	QuintupleDoubles int      `json:"quintuple_doubles"`
}

// Averages are per-game means of each counting stat, minutes, and plus/minus.
type Averages struct {
	Points               float64 `json:"points"`
	Assists              float64 `json:"assists"`
	Rebounds             float64 `json:"rebounds"`
	Steals               float64 `json:"steals"`
	Blocks               float64 `json:"blocks"`
	Turnovers            float64 `json:"turnovers"`
	Fouls                float64 `json:"fouls"`
	FieldGoalsMade       float64 `json:"field_goals_made"`
	FieldGoalsAttempted  float64 `json:"field_goals_attempted"`
	ThreePointsMade      float64 `json:"three_points_made"`
	ThreePointsAttempted float64 `json:"three_points_attempted"`
	FreeThrowsMade       float64 `json:"free_throws_made"`
	FreeThrowsAttempted  float64 `json:"free_throws_attempted"`
	PlusMinus            float64 `json:"plus_minus"`
	MinutesPlayed        float64 `json:"minutes_played"`
}

// Highs are the best single-game values across a player's history.
type Highs struct {
	Points   int `json:"highest_points"`
	Assists  int `json:"highest_assists"`
	Rebounds int `json:"highest_rebounds"`
	Steals   int `json:"highest_steals"`
	Blocks   int `json:"highest_blocks"`
}

// AggregateCareer folds a player's full game history into a Career in one
// pass. An empty history yields the zero Career: no games, and every
// percentage and average defined as 0 rather than dividing by zero.
//
// Shooting percentages are percentage-of-sums: makes and attempts are summed
// across games before dividing, so an 0-for-0 game cannot distort them the
// way averaging per-game percentages would.
func AggregateCareer(lines []StatLine) Career {
	career := Career{GamesPlayed: len(lines)}

	for _, l := range lines {
		career.Totals = career.Totals.add(l)

		career.Highs.Points = max(career.Highs.Points, l.Points)
		career.Highs.Assists = max(career.Highs.Assists, l.Assists)
		career.Highs.Rebounds = max(career.Highs.Rebounds, l.Rebounds)
		career.Highs.Steals = max(career.Highs.Steals, l.Steals)
		career.Highs.Blocks = max(career.Highs.Blocks, l.Blocks)

		switch Classify(l) {
		case DoubleDouble:
			career.DoubleDoubles++
		case TripleDouble:
			career.TripleDoubles++
		case QuadrupleDouble:
			career.QuadrupleDoubles++
		case QuintupleDouble:
			career.QuintupleDoubles++
		}
	}

	career.FieldGoalPct = pct(career.Totals.FieldGoalsMade, career.Totals.FieldGoalsAttempted)
	career.ThreePointPct = pct(career.Totals.ThreePointsMade, career.Totals.ThreePointsAttempted)
	career.FreeThrowPct = pct(career.Totals.FreeThrowsMade, career.Totals.FreeThrowsAttempted)

	if career.GamesPlayed > 0 {
		games := float64(career.GamesPlayed)
		career.Averages = Averages{
			Points:               float64(career.Totals.Points) / games,
			Assists:              float64(career.Totals.Assists) / games,
			Rebounds:             float64(career.Totals.Rebounds) / games,
			Steals:               float64(career.Totals.Steals) / games,
			Blocks:               float64(career.Totals.Blocks) / games,
			Turnovers:            float64(career.Totals.Turnovers) / games,
			Fouls:                float64(career.Totals.Fouls) / games,
			FieldGoalsMade:       float64(career.Totals.FieldGoalsMade) / games,
			FieldGoalsAttempted:  float64(career.Totals.FieldGoalsAttempted) / games,
			ThreePointsMade:      float64(career.Totals.ThreePointsMade) / games,
			ThreePointsAttempted: float64(career.Totals.ThreePointsAttempted) / games,
			FreeThrowsMade:       float64(career.Totals.FreeThrowsMade) / games,
			FreeThrowsAttempted:  float64(career.Totals.FreeThrowsAttempted) / games,
			PlusMinus:            float64(career.Totals.PlusMinus) / games,
			MinutesPlayed:        float64(career.Totals.MinutesPlayed) / games,
		}
	}

	return career
}

func pct(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return float64(made) / float64(attempted) * 100
}
