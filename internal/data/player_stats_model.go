package data

import (
	"LeagueStatsApi/internal/store"
	"context"
	"encoding/json"
	"errors"
	"sort"
)

type PlayerStatModel struct {
	store store.Store
}

func statLineKey(playerID, matchID string) store.Filter {
	return store.Filter{"player_id": playerID, "match_id": matchID}
}

func (m PlayerStatModel) Get(ctx context.Context, playerID, matchID string) (*GameStatLine,
	error) {
	doc, err := m.store.GetRow(ctx, TablePlayerStats, statLineKey(playerID, matchID))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	var line GameStatLine
	if err := json.Unmarshal(doc, &line); err != nil {
		return nil, err
	}

	return &line, nil
}

// GetAllForPlayer reads the player's complete game history. The career
// aggregator calls this fresh on every recompute.
func (m PlayerStatModel) GetAllForPlayer(ctx context.Context, playerID string) ([]GameStatLine,
	error) {
	docs, err := m.store.GetRows(ctx, TablePlayerStats, store.Filter{"player_id": playerID})
	if err != nil {
		return nil, err
	}

	lines := make([]GameStatLine, 0, len(docs))
	for _, doc := range docs {
		var line GameStatLine
		if err := json.Unmarshal(doc, &line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

type StatLineFilter struct {
	Filters
	PlayerID string `json:"player_id,omitempty"`
	MatchID  string `json:"match_id,omitempty"`
	TeamID   string `json:"team_id,omitempty"`
}

// GetAll lists stat lines matching the filter, sorted and paged. The store
// only understands equality filters, so ordering and paging happen here.
func (m PlayerStatModel) GetAll(ctx context.Context, filter StatLineFilter) ([]GameStatLine,
	Metadata, error) {
	rowFilter := store.Filter{}
	if filter.PlayerID != "" {
		rowFilter["player_id"] = filter.PlayerID
	}
	if filter.MatchID != "" {
		rowFilter["match_id"] = filter.MatchID
	}
	if filter.TeamID != "" {
		rowFilter["team_id"] = filter.TeamID
	}

	docs, err := m.store.GetRows(ctx, TablePlayerStats, rowFilter)
	if err != nil {
		return nil, Metadata{}, err
	}

	lines := make([]GameStatLine, 0, len(docs))
	for _, doc := range docs {
		var line GameStatLine
		if err := json.Unmarshal(doc, &line); err != nil {
			return nil, Metadata{}, err
		}
		lines = append(lines, line)
	}

	sortStatLines(lines, filter.Filters)

	metadata := calculateMetadata(len(lines), filter.Page, filter.PageSize)

	start := filter.offset()
	if start > len(lines) {
		start = len(lines)
	}
	end := start + filter.limit()
	if end > len(lines) {
		end = len(lines)
	}

	return lines[start:end], metadata, nil
}

func sortStatLines(lines []GameStatLine, f Filters) {
	column := f.sortColumn()
	desc := f.sortDescending()

	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if desc {
			a, b = b, a
		}
		switch column {
		case "points":
			if a.Points != b.Points {
				return a.Points < b.Points
			}
		case "performance_score":
			if a.PerformanceScore != b.PerformanceScore {
				return a.PerformanceScore < b.PerformanceScore
			}
		case "created_at":
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		if a.PlayerID != b.PlayerID {
			return a.PlayerID < b.PlayerID
		}
		return a.MatchID < b.MatchID
	})
}

func (m PlayerStatModel) Upsert(ctx context.Context, line *GameStatLine) error {
	_, err := m.store.UpsertRow(ctx, TablePlayerStats,
		statLineKey(line.PlayerID, line.MatchID), line)
	return err
}

func (m PlayerStatModel) Delete(ctx context.Context, playerID, matchID string) (bool, error) {
	return m.store.DeleteRow(ctx, TablePlayerStats, statLineKey(playerID, matchID))
}
