package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/dkush22/nfl-playoff-draft/controller"
	"github.com/dkush22/nfl-playoff-draft/feed"
)

func getRouter(ctrl controller.C, picks *feed.Feed, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playerSearchHandler(ctrl, render))
		r.Get("/{playerID}", getPlayerHandler(ctrl, render))
	})

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", listLeaguesHandler(ctrl, render))
		r.Post("/", addLeagueHandler(ctrl, render))

		r.Route("/{leagueID:\\d+}", func(r chi.Router) {
			r.Get("/", getLeagueHandler(ctrl, render))
			r.Delete("/", archiveLeagueHandler(ctrl, render))
			r.Post("/managers", addLeagueManagerHandler(ctrl, render))
			r.Post("/order", setDraftOrderHandler(ctrl, render))
			r.Post("/start", startDraftHandler(ctrl, render))
			r.Post("/reset", resetDraftHandler(ctrl, render))

			r.Get("/draft", getDraftStateHandler(ctrl, render))
			r.Post("/draft", makePickHandler(ctrl, render))
			r.Get("/picks", listPicksHandler(ctrl, render))
			r.Get("/scores/{gameID}", getTeamScoresHandler(ctrl, render))

			r.Get("/live", liveHandler(picks))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("ff", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(30 * time.Second))                               // Set a longer timeout for /admin actions

		r.Post("/players", forceUpdatePlayers(ctrl, render))
		r.Post("/scores", forceScoreCurrentGames(ctrl, render))
		r.Post("/scores/{gameID}", forceScoreGame(ctrl, render))
	})

	return r
}
