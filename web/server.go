package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/esleague/ESRace/controller"
	"github.com/esleague/ESRace/model"
	"github.com/itbasis/go-clock"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
	hub    *hub
}

func NewServer(port int, ctrl controller.C, clk clock.Clock) (*Server, error) {
	render := newRender(clk)
	hub := newHub()
	ctrl.AddUpdateListener(hub.runnerUpdated)
	router := getRouter(ctrl, render, hub)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		hub: hub,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.hub.closeAll()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender(clk clock.Clock) *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"countdown": func(ri *model.RaceInfo) string {
					return ri.Countdown(clk.Now())
				},
				"daterange": dateRangeFormatter,
				"rank":      rankFormatter,
			},
		},
	})
}

func dateRangeFormatter(ri *model.RaceInfo) string {
	if ri == nil {
		return ""
	}
	return ri.FormattedDateRange()
}

// rankFormatter renders the leaderboard position for a runner. Whitelisted
// runners hold a row but not a place, so they show a dash.
func rankFormatter(position int, r model.Runner) string {
	if !r.IsCompetitive {
		return "-"
	}
	return fmt.Sprintf("%d", position+1)
}
