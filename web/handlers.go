package web

import (
	"net/http"
	"strconv"

	"github.com/itsmikesebringyo/ff-app/controller"
	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/unrolled/render"
)

type weeklyResponse struct {
	Week      int                  `json:"week"`
	Season    string               `json:"season"`
	Standings []model.TeamStanding `json:"standings"`
}

type overallResponse struct {
	Season    string                  `json:"season"`
	Standings []model.OverallStanding `json:"standings"`
}

type nflStateResponse struct {
	Season      string `json:"season"`
	Week        int    `json:"week"`
	SeasonType  string `json:"season_type"`
	DisplayWeek int    `json:"display_week"`
}

type pollingStatusResponse struct {
	model.PollingStatus
	Polling model.PollingState `json:"polling"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func weeklyStandingsHandler(ctrl controller.C, render *render.Render, season string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week := 0
		if q := r.URL.Query().Get("week"); q != "" {
			parsed, err := strconv.Atoi(q)
			if err != nil || parsed < 1 || parsed > 18 {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: "week must be a number between 1 and 18"})
				return
			}
			week = parsed
		}

		if week == 0 {
			info, err := ctrl.CurrentWeek(r.Context())
			if err != nil {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
				return
			}
			week = info.Week
		}

		standings, err := ctrl.GetWeeklyStandings(r.Context(), week)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, weeklyResponse{Week: week, Season: season, Standings: standings})
	}
}

func overallStandingsHandler(ctrl controller.C, render *render.Render, season string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.GetOverallStandings(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, overallResponse{Season: season, Standings: standings})
	}
}

func nflStateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := ctrl.GetNFLState(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch NFL state"})
			return
		}
		render.JSON(w, http.StatusOK, nflStateResponse{
			Season:      state.Season,
			Week:        state.Week,
			SeasonType:  state.SeasonType,
			DisplayWeek: state.DisplayWeek,
		})
	}
}

func pollingStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := ctrl.PollingStatus(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		// Also tell clients whether a refresh cadence makes sense right
		// now, so the UI can idle outside of game windows.
		polling, err := ctrl.EvaluatePolling(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, pollingStatusResponse{PollingStatus: *status, Polling: *polling})
	}
}

func pollingToggleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := ctrl.PollingStatus(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		status, err := ctrl.SetPollingEnabled(r.Context(), !current.Enabled)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, status)
	}
}

func calculatePlayoffsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		odds, err := ctrl.CalculatePlayoffOdds(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"message":             "Playoff odds recalculated",
			"playoff_percentages": odds,
		})
	}
}

func syncHistoricalHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		synced, err := ctrl.SyncHistorical(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"message":      "Historical sync completed",
			"weeks_synced": synced,
		})
	}
}

func fetchPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"message": "Player directory refreshed"})
	}
}

func adminValidateHandler(adminKey string, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !validAdminKey(r, adminKey) {
			render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid admin key"})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"message": "Valid admin key"})
	}
}
