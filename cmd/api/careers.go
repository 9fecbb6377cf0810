package main

import (
	"LeagueStatsApi/internal/data"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func (app *application) GetCareerTotals(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")

	career, err := app.models.Careers.Get(r.Context(), playerID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"career": career}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WatchCareer upgrades the request to a websocket and streams every career
// recompute for the player until the client disconnects.
func (app *application) WatchCareer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logError(r, err)
		return
	}

	app.feed.Join(playerID, conn)
}
