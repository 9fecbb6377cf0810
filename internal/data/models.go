package data

import (
	"LeagueStatsApi/internal/store"
)

// Store table names. The backing store is table-oriented: rows are addressed
// by table name plus key, so these constants are the whole schema surface.
const (
	TablePlayerStats = "player_stats"
	TableCareers     = "career_totals"
	TableUsers       = "users"
	TableTokens      = "tokens"
)

type Models struct {
	PlayerStats PlayerStatModel
	Careers     CareerModel
	Users       UserModel
	Tokens      TokenModel
}

func NewModels(st store.Store) Models {
	return Models{
		PlayerStats: PlayerStatModel{store: st},
		Careers:     CareerModel{store: st},
		Users:       UserModel{store: st},
		Tokens:      TokenModel{store: st},
	}
}
