package data

import (
	"LeagueStatsApi/internal/clock"
	"LeagueStatsApi/internal/stats"
	"LeagueStatsApi/internal/store"
	"LeagueStatsApi/internal/validator"
	"context"
	"errors"
)

// StatsService owns the write path for stat lines and career totals. External
// callers only submit candidate lines and read results; every mutation flows
// through Submit or Remove, each of which ends with a full career recompute.
type StatsService struct {
	PlayerStats PlayerStatModel
	Careers     CareerModel

	// OnCareerUpdate, when set, is called with each successfully persisted
	// rollup. The API layer hooks the websocket feed in here.
	OnCareerUpdate func(*CareerTotals)

	clock clock.Clock
}

func NewStatsService(st store.Store, clk clock.Clock) *StatsService {
	return &StatsService{
		PlayerStats: PlayerStatModel{store: st},
		Careers:     CareerModel{store: st},
		clock:       clk,
	}
}

// Submit creates or overwrites the stat line for (playerID, matchID). For an
// update, the dto is merged onto the stored line before validation, so an
// invalid merged record is rejected in full and the stored record stands.
// Derived metrics are recomputed on every accepted write, then the player's
// career totals are recomputed from the full history.
//
// When the line write succeeds but the recompute does not, Submit returns the
// saved line together with an AggregationErr: the line is durable, the career
// row is stale until the next successful pass.
func (s *StatsService) Submit(ctx context.Context, playerID, matchID string,
	dto StatLineDto) (*GameStatLine, error) {
	var line *GameStatLine

	existing, err := s.PlayerStats.Get(ctx, playerID, matchID)
	switch {
	case err == nil:
		line = existing
		dto.Merge(line)
	case errors.Is(err, ErrRecordNotFound):
		line = dto.Convert(playerID, matchID)
		line.CreatedAt = s.clock.Now()
	default:
		return nil, err
	}

	v := validator.New()
	if ValidateStatLine(v, line); !v.Valid() {
		return nil, ModelValidationErr{Errors: v.Errors}
	}

	line.GameScore = stats.GameScore(line.StatLine)
	line.Efficiency = stats.Efficiency(line.StatLine)
	line.PerformanceScore = stats.PerformanceScore(line.StatLine)
	line.UpdatedAt = s.clock.Now()

	if err := s.PlayerStats.Upsert(ctx, line); err != nil {
		return nil, err
	}

	if _, err := s.Recompute(ctx, playerID); err != nil {
		return line, AggregationErr{PlayerID: playerID, Err: err}
	}

	return line, nil
}

// Remove deletes the stat line for (playerID, matchID) and recomputes the
// owning player's career totals to reflect the removal.
func (s *StatsService) Remove(ctx context.Context, playerID, matchID string) error {
	deleted, err := s.PlayerStats.Delete(ctx, playerID, matchID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}

	if _, err := s.Recompute(ctx, playerID); err != nil {
		return AggregationErr{PlayerID: playerID, Err: err}
	}

	return nil
}

// Recompute rebuilds the player's career totals from every stat line on
// record and persists the result as a single overwrite. It never applies
// deltas: a full recompute self-corrects any drift a racing or failed pass
// left behind. If the history read fails, nothing is written and the prior
// rollup stays authoritative.
func (s *StatsService) Recompute(ctx context.Context, playerID string) (*CareerTotals, error) {
	lines, err := s.PlayerStats.GetAllForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	history := make([]stats.StatLine, len(lines))
	for i, line := range lines {
		history[i] = line.StatLine
	}

	totals := &CareerTotals{
		PlayerID:    playerID,
		Career:      stats.AggregateCareer(history),
		LastUpdated: s.clock.Now(),
	}

	if err := s.Careers.Replace(ctx, totals); err != nil {
		return nil, err
	}

	if s.OnCareerUpdate != nil {
		s.OnCareerUpdate(totals)
	}

	return totals, nil
}
