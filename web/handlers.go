package web

import (
	"errors"
	"net/http"

	"github.com/esleague/ESRace/controller"
	"github.com/esleague/ESRace/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func eventListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "events", ctrl.ListEvents())
	}
}

// leaderboardHandler renders the leaderboard for one event. A plain page view
// starts a fresh aggregation. A view with a sort parameter reuses the current
// collection when it belongs to the same event, so re-sorting surfaces
// already-enriched data instead of refetching everything.
func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")
		sortParam := r.URL.Query().Get("sort")

		view, loaded := ctrl.Snapshot()
		reuse := loaded && view.Event.ID == eventID && sortParam != ""
		if !reuse {
			if err := ctrl.LoadEvent(r.Context(), eventID); err != nil {
				if errors.Is(err, controller.ErrUnknownEvent) {
					render.HTML(w, http.StatusNotFound, "404", err.Error())
				} else {
					render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				}
				return
			}
		}

		if sortParam != "" {
			criterion, err := model.ParseSortCriterion(sortParam)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
				return
			}
			if err := ctrl.ApplySort(criterion); err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
		}

		view, loaded = ctrl.Snapshot()
		if !loaded {
			render.HTML(w, http.StatusInternalServerError, "500", "no event loaded")
			return
		}
		render.HTML(w, http.StatusOK, "leaderboard", view)
	}
}

func apiEventListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.ListEvents())
	}
}

// apiRunnersHandler returns the current runner collection as JSON. It never
// starts a new aggregation, so pollers observe enrichment progress for the
// session the page loaded.
func apiRunnersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")

		view, loaded := ctrl.Snapshot()
		if !loaded || view.Event.ID != eventID {
			render.JSON(w, http.StatusNotFound, map[string]string{"error": "event not loaded"})
			return
		}

		if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
			criterion, err := model.ParseSortCriterion(sortParam)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			if err := ctrl.ApplySort(criterion); err != nil {
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			view, _ = ctrl.Snapshot()
		}

		render.JSON(w, http.StatusOK, view)
	}
}
