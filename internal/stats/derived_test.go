package stats

import (
	"LeagueStatsApi/internal/assert"
	"testing"
)

func TestGameScore(t *testing.T) {
	tests := []struct {
		name string
		line StatLine
		want float64
	}{
		{
			name: "Empty Line",
			line: StatLine{},
			want: 0.0,
		},
		{
			name: "Full Line",
			line: StatLine{
				Points:              25,
				Assists:             8,
				Rebounds:            7,
				Steals:              2,
				Blocks:              1,
				Turnovers:           4,
				Fouls:               3,
				FieldGoalsMade:      10,
				FieldGoalsAttempted: 20,
				FreeThrowsMade:      5,
				FreeThrowsAttempted: 6,
			},
			want: 19.8,
		},
		{
			name: "Missed Shots Only",
			line: StatLine{FieldGoalsAttempted: 10, FreeThrowsAttempted: 5},
			want: -9.0,
		},
		{
			name: "Combined Rebounds At Three Tenths",
			line: StatLine{Rebounds: 10},
			want: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.FloatEqual(t, GameScore(tt.line), tt.want)
		})
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name string
		line StatLine
		want float64
	}{
		{
			name: "Empty Line",
			line: StatLine{},
			want: 0.0,
		},
		{
			name: "Full Line",
			line: StatLine{
				Points:              25,
				Assists:             8,
				Rebounds:            7,
				Steals:              2,
				Blocks:              1,
				Turnovers:           4,
				FieldGoalsMade:      10,
				FieldGoalsAttempted: 20,
				FreeThrowsMade:      5,
				FreeThrowsAttempted: 6,
			},
			want: 28.0,
		},
		{
			name: "Negative Rating",
			line: StatLine{FieldGoalsAttempted: 8, Turnovers: 3},
			want: -11.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.FloatEqual(t, Efficiency(tt.line), tt.want)
		})
	}
}

func TestPerformanceScore(t *testing.T) {
	tests := []struct {
		name string
		line StatLine
		want float64
	}{
		{
			name: "Empty Line",
			line: StatLine{},
			want: 0.0,
		},
		{
			name: "No Bonus",
			line: StatLine{Points: 18, Assists: 4, Rebounds: 5, ThreePointsMade: 2},
			want: 22.5,
		},
		{
			name: "Double Double Bonus",
			line: StatLine{Points: 10, Assists: 11, Rebounds: 3},
			want: 21.4,
		},
		{
			name: "Quadruple Double Bonus",
			line: StatLine{Points: 20, Assists: 10, Rebounds: 12, Steals: 11, Blocks: 1},
			want: 56.6,
		},
		{
			name: "Floored At Zero",
			line: StatLine{Turnovers: 20},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.FloatEqual(t, PerformanceScore(tt.line), tt.want)
		})
	}
}

func TestPerformanceScoreIdempotent(t *testing.T) {
	line := StatLine{
		Points:              31,
		Assists:             12,
		Rebounds:            10,
		Steals:              2,
		Blocks:              1,
		Turnovers:           5,
		ThreePointsMade:     4,
		FieldGoalsMade:      11,
		FieldGoalsAttempted: 23,
	}

	assert.FloatEqual(t, GameScore(line), GameScore(line))
	assert.FloatEqual(t, Efficiency(line), Efficiency(line))
	assert.FloatEqual(t, PerformanceScore(line), PerformanceScore(line))
}

func TestPerformanceBonus(t *testing.T) {
	tests := []struct {
		name string
		line StatLine
		want float64
	}{
		{
			name: "Zero Categories",
			line: StatLine{Points: 9, Assists: 9},
			want: 0.0,
		},
		{
			name: "One Category",
			line: StatLine{Points: 40},
			want: 0.0,
		},
		{
			name: "Two Categories",
			line: StatLine{Points: 10, Assists: 11},
			want: 5.0,
		},
		{
			name: "Three Categories",
			line: StatLine{Points: 10, Rebounds: 10, Blocks: 10},
			want: 10.0,
		},
		{
			name: "Five Categories",
			line: StatLine{Points: 10, Assists: 10, Rebounds: 10, Steals: 10, Blocks: 10},
			want: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.FloatEqual(t, PerformanceBonus(tt.line), tt.want)
		})
	}
}
