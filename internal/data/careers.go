package data

import (
	"LeagueStatsApi/internal/stats"
	"LeagueStatsApi/internal/store"
	"context"
	"encoding/json"
	"errors"
	"time"
)

// CareerTotals is a player's materialized career rollup. It is derived state:
// the aggregator overwrites the whole record on every pass and resets it to
// zero when the player's last stat line is removed. Nothing merge-patches it.
type CareerTotals struct {
	PlayerID string `json:"player_id"`

	stats.Career

	LastUpdated time.Time `json:"last_updated"`
}

type CareerModel struct {
	store store.Store
}

func careerKey(playerID string) store.Filter {
	return store.Filter{"player_id": playerID}
}

func (m CareerModel) Get(ctx context.Context, playerID string) (*CareerTotals, error) {
	doc, err := m.store.GetRow(ctx, TableCareers, careerKey(playerID))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	var totals CareerTotals
	if err := json.Unmarshal(doc, &totals); err != nil {
		return nil, err
	}

	return &totals, nil
}

// Replace persists the rollup with replace-all semantics.
func (m CareerModel) Replace(ctx context.Context, totals *CareerTotals) error {
	_, err := m.store.UpsertRow(ctx, TableCareers, careerKey(totals.PlayerID), totals)
	return err
}
