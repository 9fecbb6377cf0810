package main

import (
	"LeagueStatsApi/internal/data"
	"LeagueStatsApi/internal/validator"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) SubmitPlayerStat(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerID string `json:"player_id"`
		MatchID  string `json:"match_id"`
		data.StatLineDto
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	line, err := app.service.Submit(r.Context(), input.PlayerID, input.MatchID,
		input.StatLineDto)
	if err != nil {
		var aggregationErr data.AggregationErr
		if errors.As(err, &aggregationErr) {
			app.staleAggregationResponse(w, r, line, aggregationErr)
			return
		}
		app.submitErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/player-stats/%s/%s", line.PlayerID, line.MatchID))
	err = app.writeJSON(w, http.StatusCreated, envelope{"player_stat": line}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdatePlayerStat(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")
	matchID := chi.URLParam(r, "match_id")

	// updates must target an existing line; Submit alone would upsert
	_, err := app.models.PlayerStats.Get(r.Context(), playerID, matchID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var dto data.StatLineDto
	err = app.readJSON(w, r, &dto)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	line, err := app.service.Submit(r.Context(), playerID, matchID, dto)
	if err != nil {
		var aggregationErr data.AggregationErr
		if errors.As(err, &aggregationErr) {
			app.staleAggregationResponse(w, r, line, aggregationErr)
			return
		}
		app.submitErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"player_stat": line}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPlayerStat(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")
	matchID := chi.URLParam(r, "match_id")

	line, err := app.models.PlayerStats.Get(r.Context(), playerID, matchID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"player_stat": line}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllPlayerStats(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()
	filter := data.StatLineFilter{}

	filter.PlayerID = app.readString(qs, "player_id", "")
	filter.MatchID = app.readString(qs, "match_id", "")
	filter.TeamID = app.readString(qs, "team_id", "")

	filter.Filters.Page = app.readInt(qs, "page", 1, v)
	filter.Filters.PageSize = app.readInt(qs, "page_size", 20, v)
	filter.Filters.Sort = app.readString(qs, "sort", "created_at")
	filter.Filters.SortSafeList = []string{"points", "performance_score", "created_at",
		"-points", "-performance_score", "-created_at"}

	if data.ValidateFilters(v, filter.Filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	lines, metadata, err := app.models.PlayerStats.GetAll(r.Context(), filter)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata,
		"player_stats": lines}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeletePlayerStat(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")
	matchID := chi.URLParam(r, "match_id")

	err := app.service.Remove(r.Context(), playerID, matchID)
	if err != nil {
		var aggregationErr data.AggregationErr
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &aggregationErr):
			app.logError(r, aggregationErr)
			err = app.writeJSON(w, http.StatusOK, envelope{
				"message": "stat line successfully deleted",
				"warning": staleCareerWarning,
			}, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": "stat line successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

const staleCareerWarning = "career totals could not be recomputed and may be stale; " +
	"they will self-correct on the next successful update"

// staleAggregationResponse reports a stat line that was saved even though the
// career recompute after it failed. The write is durable, so this is not an
// error status; the envelope carries the saved line plus a staleness warning.
func (app *application) staleAggregationResponse(w http.ResponseWriter, r *http.Request,
	line *data.GameStatLine, aggregationErr data.AggregationErr) {
	app.logError(r, aggregationErr)

	err := app.writeJSON(w, http.StatusOK, envelope{
		"player_stat": line,
		"warning":     staleCareerWarning,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) submitErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var modelValidationErr data.ModelValidationErr
	switch {
	case errors.As(err, &modelValidationErr):
		app.failedValidationResponse(w, r, modelValidationErr.Errors)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
