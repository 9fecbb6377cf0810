package data

import (
	"LeagueStatsApi/internal/stats"
	"LeagueStatsApi/internal/validator"
	"time"

	"github.com/google/uuid"
)

// GameStatLine is one player's box score for one completed match. At most one
// line exists per (player_id, match_id). The derived fields are never taken
// from a client; they are recomputed on every create and update.
type GameStatLine struct {
	PlayerID string `json:"player_id"`
	MatchID  string `json:"match_id"`
	TeamID   string `json:"team_id"`

	stats.StatLine

	GameScore        float64 `json:"game_score"`
	Efficiency       float64 `json:"efficiency"`
	PerformanceScore float64 `json:"performance_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateStatLine runs every bound check on a fully-defaulted line. All
// checks run; every violation lands in v keyed by the offending field.
func ValidateStatLine(v *validator.Validator, line *GameStatLine) {
	checkUUID(v, "player_id", line.PlayerID)
	checkUUID(v, "match_id", line.MatchID)
	checkUUID(v, "team_id", line.TeamID)

	counting := []struct {
		key   string
		value int
	}{
		{"points", line.Points},
		{"assists", line.Assists},
		{"rebounds", line.Rebounds},
		{"steals", line.Steals},
		{"blocks", line.Blocks},
		{"turnovers", line.Turnovers},
		{"fouls", line.Fouls},
		{"field_goals_made", line.FieldGoalsMade},
		{"field_goals_attempted", line.FieldGoalsAttempted},
		{"three_points_made", line.ThreePointsMade},
		{"three_points_attempted", line.ThreePointsAttempted},
		{"free_throws_made", line.FreeThrowsMade},
		{"free_throws_attempted", line.FreeThrowsAttempted},
	}
	for _, c := range counting {
		v.Check(c.value >= 0, c.key, "must be zero or greater")
	}

	v.Check(line.FieldGoalsMade <= line.FieldGoalsAttempted,
		"field_goals_made", "exceeds field_goals_attempted")
	v.Check(line.ThreePointsMade <= line.ThreePointsAttempted,
		"three_points_made", "exceeds three_points_attempted")
	v.Check(line.FreeThrowsMade <= line.FreeThrowsAttempted,
		"free_throws_made", "exceeds free_throws_attempted")

	v.Check(line.MinutesPlayed >= 0 && line.MinutesPlayed <= 48,
		"minutes_played", "out of range")
}

func checkUUID(v *validator.Validator, key, value string) {
	if value == "" {
		v.AddError(key, "must be provided")
		return
	}
	if _, err := uuid.Parse(value); err != nil {
		v.AddError(key, "must be a valid UUID")
	}
}

// StatLineDto is a submitted stat line. Every field is optional: on create,
// missing numeric fields default to zero; on update, only the provided
// fields overwrite the stored line. The merged result is validated in full
// either way.
type StatLineDto struct {
	TeamID               *string `json:"team_id"`
	Points               *int    `json:"points"`
	Assists              *int    `json:"assists"`
	Rebounds             *int    `json:"rebounds"`
	Steals               *int    `json:"steals"`
	Blocks               *int    `json:"blocks"`
	Turnovers            *int    `json:"turnovers"`
	Fouls                *int    `json:"fouls"`
	FieldGoalsMade       *int    `json:"field_goals_made"`
	FieldGoalsAttempted  *int    `json:"field_goals_attempted"`
	ThreePointsMade      *int    `json:"three_points_made"`
	ThreePointsAttempted *int    `json:"three_points_attempted"`
	FreeThrowsMade       *int    `json:"free_throws_made"`
	FreeThrowsAttempted  *int    `json:"free_throws_attempted"`
	PlusMinus            *int    `json:"plus_minus"`
	MinutesPlayed        *int    `json:"minutes_played"`
}

// Convert builds a new line for (playerID, matchID) with zero defaults for
// anything the dto leaves unset.
func (dto StatLineDto) Convert(playerID, matchID string) *GameStatLine {
	line := &GameStatLine{
		PlayerID: playerID,
		MatchID:  matchID,
	}
	dto.Merge(line)
	return line
}

// Merge overwrites the line's fields with whatever the dto provides, leaving
// the rest untouched.
func (dto StatLineDto) Merge(line *GameStatLine) {
	if dto.TeamID != nil {
		line.TeamID = *dto.TeamID
	}
	if dto.Points != nil {
		line.Points = *dto.Points
	}
	if dto.Assists != nil {
		line.Assists = *dto.Assists
	}
	if dto.Rebounds != nil {
		line.Rebounds = *dto.Rebounds
	}
	if dto.Steals != nil {
		line.Steals = *dto.Steals
	}
	if dto.Blocks != nil {
		line.Blocks = *dto.Blocks
	}
	if dto.Turnovers != nil {
		line.Turnovers = *dto.Turnovers
	}
	if dto.Fouls != nil {
		line.Fouls = *dto.Fouls
	}
	if dto.FieldGoalsMade != nil {
		line.FieldGoalsMade = *dto.FieldGoalsMade
	}
	if dto.FieldGoalsAttempted != nil {
		line.FieldGoalsAttempted = *dto.FieldGoalsAttempted
	}
	if dto.ThreePointsMade != nil {
		line.ThreePointsMade = *dto.ThreePointsMade
	}
	if dto.ThreePointsAttempted != nil {
		line.ThreePointsAttempted = *dto.ThreePointsAttempted
	}
	if dto.FreeThrowsMade != nil {
		line.FreeThrowsMade = *dto.FreeThrowsMade
	}
	if dto.FreeThrowsAttempted != nil {
		line.FreeThrowsAttempted = *dto.FreeThrowsAttempted
	}
	if dto.PlusMinus != nil {
		line.PlusMinus = *dto.PlusMinus
	}
	if dto.MinutesPlayed != nil {
		line.MinutesPlayed = *dto.MinutesPlayed
	}
}
