package data

import (
	"LeagueStatsApi/internal/assert"
	"LeagueStatsApi/internal/clock"
	"LeagueStatsApi/internal/store"
	"context"
	"errors"
	"testing"
	"time"
)

var (
	t1 = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	t2 = time.Date(2025, 3, 8, 20, 30, 0, 0, time.UTC)

	secondMatchID = "e79c1f4b-6a0d-4f0e-8a86-0f19c2e4aa21"
)

func newTestService(t *testing.T) (*StatsService, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return NewStatsService(st, clock.Fixed{Time: t1}), st
}

func TestSubmitCreate(t *testing.T) {
	svc, _ := newTestService(t)

	dto := StatLineDto{
		TeamID:   ptr(testTeamID),
		Points:   ptr(10),
		Assists:  ptr(11),
		Rebounds: ptr(3),
	}

	line, err := svc.Submit(context.Background(), testPlayerID, testMatchID, dto)
	assert.NilError(t, err)

	assert.Equal(t, line.Points, 10)
	assert.FloatEqual(t, line.GameScore, 18.6)
	assert.FloatEqual(t, line.Efficiency, 24.0)
	assert.FloatEqual(t, line.PerformanceScore, 21.4)
	assert.Equal(t, line.CreatedAt, t1)
	assert.Equal(t, line.UpdatedAt, t1)

	stored, err := svc.PlayerStats.Get(context.Background(), testPlayerID, testMatchID)
	assert.NilError(t, err)
	assert.Equal(t, *stored, *line)

	career, err := svc.Careers.Get(context.Background(), testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.GamesPlayed, 1)
	assert.Equal(t, career.DoubleDoubles, 1)
	assert.Equal(t, career.Highs.Assists, 11)
	assert.Equal(t, career.LastUpdated, t1)
}

// A rejected submission must leave no trace: no stat line and no career row.
func TestSubmitRejectsInvalidWithoutWriting(t *testing.T) {
	svc, _ := newTestService(t)

	dto := StatLineDto{
		TeamID:              ptr(testTeamID),
		FieldGoalsMade:      ptr(10),
		FieldGoalsAttempted: ptr(8),
	}

	line, err := svc.Submit(context.Background(), testPlayerID, testMatchID, dto)
	assert.Equal(t, line, nil)

	var validationErr ModelValidationErr
	if !errors.As(err, &validationErr) {
		t.Fatalf("got: %v; expected ModelValidationErr", err)
	}
	assert.Equal(t, len(validationErr.Errors), 1)
	assert.Equal(t, validationErr.Errors["field_goals_made"], "exceeds field_goals_attempted")

	_, err = svc.PlayerStats.Get(context.Background(), testPlayerID, testMatchID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	_, err = svc.Careers.Get(context.Background(), testPlayerID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// An update is merged onto the stored line before validation; if the merged
// record is invalid the whole update is rejected and the stored record
// stands.
func TestSubmitUpdateRevalidatesMergedRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		TeamID:              ptr(testTeamID),
		FieldGoalsMade:      ptr(5),
		FieldGoalsAttempted: ptr(10),
	})
	assert.NilError(t, err)

	// shrinking attempts below the stored makes is invalid after the merge
	_, err = svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		FieldGoalsAttempted: ptr(3),
	})
	var validationErr ModelValidationErr
	if !errors.As(err, &validationErr) {
		t.Fatalf("got: %v; expected ModelValidationErr", err)
	}

	stored, err := svc.PlayerStats.Get(ctx, testPlayerID, testMatchID)
	assert.NilError(t, err)
	assert.Equal(t, stored.FieldGoalsAttempted, 10)
}

func TestSubmitUpdateRecomputesDerived(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		TeamID: ptr(testTeamID),
		Points: ptr(10),
	})
	assert.NilError(t, err)

	later := NewStatsService(st, clock.Fixed{Time: t2})
	line, err := later.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		Points: ptr(20),
	})
	assert.NilError(t, err)

	assert.Equal(t, line.Points, 20)
	assert.FloatEqual(t, line.GameScore, 20.0)
	assert.FloatEqual(t, line.PerformanceScore, 20.0)
	assert.Equal(t, line.CreatedAt, t1)
	assert.Equal(t, line.UpdatedAt, t2)

	career, err := later.Careers.Get(ctx, testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.GamesPlayed, 1)
	assert.Equal(t, career.Totals.Points, 20)
	assert.Equal(t, career.LastUpdated, t2)
}

// Career shooting percentages come from summed makes and attempts across
// games, not from averaging per-game percentages.
func TestCareerPercentageOfSumsAcrossMatches(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		TeamID:              ptr(testTeamID),
		FieldGoalsMade:      ptr(5),
		FieldGoalsAttempted: ptr(10),
	})
	assert.NilError(t, err)

	_, err = svc.Submit(ctx, testPlayerID, secondMatchID, StatLineDto{
		TeamID:              ptr(testTeamID),
		FieldGoalsMade:      ptr(3),
		FieldGoalsAttempted: ptr(5),
	})
	assert.NilError(t, err)

	career, err := svc.Careers.Get(ctx, testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.GamesPlayed, 2)
	assert.FloatEqual(t, career.FieldGoalPct, 8.0/15.0*100)
}

// Removing the game behind a career high must lower the high to the true
// maximum of the remaining games; only a full recompute gets this right.
func TestRemoveRecomputesHighs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		TeamID: ptr(testTeamID),
		Points: ptr(40),
	})
	assert.NilError(t, err)
	_, err = svc.Submit(ctx, testPlayerID, secondMatchID, StatLineDto{
		TeamID: ptr(testTeamID),
		Points: ptr(22),
	})
	assert.NilError(t, err)

	career, err := svc.Careers.Get(ctx, testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.Highs.Points, 40)

	err = svc.Remove(ctx, testPlayerID, testMatchID)
	assert.NilError(t, err)

	career, err = svc.Careers.Get(ctx, testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.GamesPlayed, 1)
	assert.Equal(t, career.Highs.Points, 22)
}

func TestRemoveLastLineResetsCareer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		TeamID:              ptr(testTeamID),
		Points:              ptr(18),
		FieldGoalsMade:      ptr(7),
		FieldGoalsAttempted: ptr(14),
		MinutesPlayed:       ptr(30),
	})
	assert.NilError(t, err)

	err = svc.Remove(ctx, testPlayerID, testMatchID)
	assert.NilError(t, err)

	career, err := svc.Careers.Get(ctx, testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.GamesPlayed, 0)
	assert.FloatEqual(t, career.FieldGoalPct, 0)
	assert.FloatEqual(t, career.Averages.Points, 0)
	assert.Equal(t, career.Highs.Points, 0)
}

func TestRemoveNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Remove(context.Background(), testPlayerID, testMatchID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// A failed recompute must not lose the stat line write that preceded it: the
// caller gets the saved line back together with the aggregation error, and
// the career row simply stays stale until the next successful pass.
func TestSubmitAggregationFailureKeepsStatLine(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	errStoreDown := errors.New("store unavailable")
	st.FailTable(TableCareers, errStoreDown)

	line, err := svc.Submit(ctx, testPlayerID, testMatchID, StatLineDto{
		TeamID: ptr(testTeamID),
		Points: ptr(12),
	})

	var aggErr AggregationErr
	if !errors.As(err, &aggErr) {
		t.Fatalf("got: %v; expected AggregationErr", err)
	}
	assert.Equal(t, aggErr.PlayerID, testPlayerID)
	assert.ErrorIs(t, err, errStoreDown)

	if line == nil {
		t.Fatal("expected saved line alongside aggregation error")
	}

	stored, getErr := svc.PlayerStats.Get(ctx, testPlayerID, testMatchID)
	assert.NilError(t, getErr)
	assert.Equal(t, stored.Points, 12)

	_, getErr = svc.Careers.Get(ctx, testPlayerID)
	assert.ErrorIs(t, getErr, ErrRecordNotFound)

	// the next successful pass self-corrects
	st.FailTable(TableCareers, nil)
	_, err = svc.Recompute(ctx, testPlayerID)
	assert.NilError(t, err)

	career, err := svc.Careers.Get(ctx, testPlayerID)
	assert.NilError(t, err)
	assert.Equal(t, career.GamesPlayed, 1)
}

func TestSubmitStoreUnavailable(t *testing.T) {
	svc, st := newTestService(t)

	errStoreDown := errors.New("store unavailable")
	st.FailTable(TablePlayerStats, errStoreDown)

	line, err := svc.Submit(context.Background(), testPlayerID, testMatchID, StatLineDto{
		TeamID: ptr(testTeamID),
	})
	assert.Equal(t, line, nil)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestRecomputeNotifiesListener(t *testing.T) {
	svc, _ := newTestService(t)

	var notified *CareerTotals
	svc.OnCareerUpdate = func(totals *CareerTotals) {
		notified = totals
	}

	_, err := svc.Submit(context.Background(), testPlayerID, testMatchID, StatLineDto{
		TeamID: ptr(testTeamID),
		Points: ptr(9),
	})
	assert.NilError(t, err)

	if notified == nil {
		t.Fatal("expected career update notification")
	}
	assert.Equal(t, notified.PlayerID, testPlayerID)
	assert.Equal(t, notified.GamesPlayed, 1)
}
