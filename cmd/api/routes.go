package main

import (
	"expvar"
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)
	router.Use(app.authenticate)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// User Endpoints
	router.Post("/v1/user", app.RegisterUser)
	router.Put("/v1/user/activate", app.ActivateUser)
	router.Post("/v1/user/login", app.LoginUser)

	// Stat Line Endpoints
	router.Route("/v1/player-stats", func(router chi.Router) {
		router.Group(func(router chi.Router) {
			router.Use(app.requireAuthenticatedUser)
			router.Get("/", app.GetAllPlayerStats)
			router.Get("/{player_id}/{match_id}", app.GetPlayerStat)
		})

		router.Group(func(router chi.Router) {
			router.Use(app.requireActivatedUser)
			router.Post("/", app.SubmitPlayerStat)
			router.Patch("/{player_id}/{match_id}", app.UpdatePlayerStat)
			router.Delete("/{player_id}/{match_id}", app.DeletePlayerStat)
		})
	})

	// Career Endpoints
	router.With(app.requireAuthenticatedUser).Get("/v1/player/{player_id}/career",
		app.GetCareerTotals)
	router.Get("/v1/player/{player_id}/career/watch", app.WatchCareer)

	return router
}
