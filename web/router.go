package web

import (
	"time"

	"github.com/esleague/ESRace/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, hub *hub) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped. The websocket route is registered
	// outside this group since its connections are long lived.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/", eventListHandler(ctrl, render))
		r.Get("/events/{eventID}", leaderboardHandler(ctrl, render))

		r.Route("/api", func(r chi.Router) {
			r.Get("/events", apiEventListHandler(ctrl, render))
			r.Get("/events/{eventID}/runners", apiRunnersHandler(ctrl, render))
		})

		r.Handle("/metrics", promhttp.Handler())
	})

	r.Get("/ws", websocketHandler(hub))

	return r
}
