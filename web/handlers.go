package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/dkush22/nfl-playoff-draft/controller"
	"github.com/dkush22/nfl-playoff-draft/db"
	"github.com/dkush22/nfl-playoff-draft/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps the db sentinel errors to http status codes. Draft
// rule violations are conflicts, missing rows are not found, anything
// unrecognized is a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrPlayerNotFound) || errors.Is(err, db.ErrLeagueNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrNotYourTurn) ||
		errors.Is(err, db.ErrPlayerTaken) ||
		errors.Is(err, db.ErrDraftNotActive) ||
		errors.Is(err, db.ErrDraftComplete) ||
		errors.Is(err, db.ErrOrderNotConfigured):
		status = http.StatusConflict
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func leagueIDParam(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
	if err != nil {
		return 0, fmt.Errorf("error parsing league id: %w", err)
	}
	return int32(id), nil
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "nfl playoff draft")
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		var err error
		var results []model.Player = nil
		if query != "" {
			results, err = ctrl.Search(r.Context(), query)
			if err != nil {
				renderError(render, w, err)
				return
			}
		}

		render.JSON(w, http.StatusOK, results)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, p)
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name      string `json:"name"`
			Year      string `json:"year"`
			TeamCount int    `json:"teamCount"`
			Rounds    int    `json:"rounds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing league request: %v", err)})
			return
		}

		l, err := ctrl.AddLeague(r.Context(), req.Name, req.Year, req.TeamCount, req.Rounds)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		render.JSON(w, http.StatusCreated, l)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, l)
	}
}

func archiveLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.ArchiveLeague(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func addLeagueManagerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var manager model.LeagueManager
		if err := json.NewDecoder(r.Body).Decode(&manager); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing manager request: %v", err)})
			return
		}

		if err := ctrl.AddLeagueManager(r.Context(), id, &manager); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, err)
				return
			}
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func setDraftOrderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var req struct {
			Order []model.DraftSlot `json:"order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing order request: %v", err)})
			return
		}

		if err := ctrl.SetDraftOrder(r.Context(), id, req.Order); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, err)
				return
			}
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func startDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.StartDraft(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, err)
				return
			}
			render.JSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func resetDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.ResetDraft(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getDraftStateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		state, err := ctrl.GetDraftState(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, state)
	}
}

func makePickHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var req struct {
			ManagerID string `json:"managerID"`
			PlayerID  string `json:"playerID"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing pick request: %v", err)})
			return
		}
		if req.ManagerID == "" || req.PlayerID == "" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "managerID and playerID must be provided"})
			return
		}

		pick, err := ctrl.MakePick(r.Context(), id, req.ManagerID, req.PlayerID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusCreated, pick)
	}
}

func listPicksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		picks, err := ctrl.ListPicks(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, picks)
	}
}

func getTeamScoresHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		gameID := chi.URLParam(r, "gameID")

		scores, err := ctrl.GetTeamScores(r.Context(), gameID, id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, scores)
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error updating players: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "update players completed successfully")
	}
}

func forceScoreCurrentGames(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.ScoreCurrentGames(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error scoring current games: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "scoring run completed successfully")
	}
}

func forceScoreGame(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		if err := ctrl.ScoreGame(r.Context(), gameID); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error scoring game %s: %v", gameID, err))
			return
		}

		render.Text(w, http.StatusOK, fmt.Sprintf("scored game %s successfully", gameID))
	}
}
