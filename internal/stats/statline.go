// Package stats holds the box-score math: derived single-game metrics,
// multi-category (double-double and up) classification, and the career
// rollup. Everything here is pure; persistence lives in internal/data.
package stats

// StatLine is one player's counting stats for one game. Rebounds are tracked
// as a single combined figure; there is no offensive/defensive split.
//
// The struct also serves as the career sums type, where each field is the
// total across every game played.
type StatLine struct {
	Points               int `json:"points"`
	Assists              int `json:"assists"`
	Rebounds             int `json:"rebounds"`
	Steals               int `json:"steals"`
	Blocks               int `json:"blocks"`
	Turnovers            int `json:"turnovers"`
	Fouls                int `json:"fouls"`
	FieldGoalsMade       int `json:"field_goals_made"`
	FieldGoalsAttempted  int `json:"field_goals_attempted"`
	ThreePointsMade      int `json:"three_points_made"`
	ThreePointsAttempted int `json:"three_points_attempted"`
	FreeThrowsMade       int `json:"free_throws_made"`
	FreeThrowsAttempted  int `json:"free_throws_attempted"`
	PlusMinus            int `json:"plus_minus"`
	MinutesPlayed        int `json:"minutes_played"`
}

func (l StatLine) add(other StatLine) StatLine {
	l.Points += other.Points
	l.Assists += other.Assists
	l.Rebounds += other.Rebounds
	l.Steals += other.Steals
	l.Blocks += other.Blocks
	l.Turnovers += other.Turnovers
	l.Fouls += other.Fouls
	l.FieldGoalsMade += other.FieldGoalsMade
	l.FieldGoalsAttempted += other.FieldGoalsAttempted
	l.ThreePointsMade += other.ThreePointsMade
	l.ThreePointsAttempted += other.ThreePointsAttempted
	l.FreeThrowsMade += other.FreeThrowsMade
	l.FreeThrowsAttempted += other.FreeThrowsAttempted
	l.PlusMinus += other.PlusMinus
	l.MinutesPlayed += other.MinutesPlayed
	return l
}
