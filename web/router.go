package web

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itsmikesebringyo/ff-app/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, adminKey, season string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/weekly", weeklyStandingsHandler(ctrl, render, season))
	r.Get("/overall", overallStandingsHandler(ctrl, render, season))
	r.Get("/nfl-state", nflStateHandler(ctrl, render))

	r.Route("/polling", func(r chi.Router) {
		r.Get("/status", pollingStatusHandler(ctrl, render))

		r.With(adminOnly(adminKey, render)).Post("/toggle", pollingToggleHandler(ctrl, render))
	})

	r.Group(func(r chi.Router) {
		r.Use(adminOnly(adminKey, render))
		// These kick off full recomputes, so allow them more time than
		// the read endpoints.
		r.Use(middleware.Timeout(60 * time.Second))

		r.Post("/calculate-playoffs", calculatePlayoffsHandler(ctrl, render))
		r.Post("/sync-historical", syncHistoricalHandler(ctrl, render))
		r.Get("/players", fetchPlayersHandler(ctrl, render))
	})

	r.Post("/admin/validate", adminValidateHandler(adminKey, render))

	return r
}

// adminOnly guards mutating endpoints behind the X-Admin-Key header.
func adminOnly(adminKey string, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validAdminKey(r, adminKey) {
				render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Admin access required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validAdminKey(r *http.Request, adminKey string) bool {
	key := r.Header.Get("X-Admin-Key")
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) == 1
}
