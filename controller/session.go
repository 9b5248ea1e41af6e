package controller

import (
	"errors"
	"sync"

	"github.com/esleague/ESRace/model"
)

// session owns one event view: the runner collection, the active sort
// criterion and the race metadata. A new session replaces the old one on
// every LoadEvent; the generation number lets detached enrichment tasks tell
// whether they still belong to the active view.
type session struct {
	generation int64
	event      model.Event
	raceInfo   *model.RaceInfo

	mu        sync.Mutex
	criterion model.SortCriterion
	runners   []*model.Runner
}

func newSession(generation int64, event model.Event, raceInfo *model.RaceInfo, runners []*model.Runner) *session {
	return &session{
		generation: generation,
		event:      event,
		raceInfo:   raceInfo,
		criterion:  model.SortDistance,
		runners:    runners,
	}
}

func (s *session) snapshot() *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	runners := make([]model.Runner, len(s.runners))
	for i, r := range s.runners {
		runners[i] = *r
	}

	return &View{
		Event:      s.event,
		RaceInfo:   s.raceInfo,
		Criterion:  s.criterion,
		Generation: s.generation,
		Runners:    runners,
	}
}

func (s *session) sort(criterion model.SortCriterion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criterion = criterion
	model.SortRunners(s.runners, criterion)
}

// runnerList returns the runner pointers for the enrichment pass. Enrichment
// mutates the pointed-to runners; all mutation happens under s.mu.
func (s *session) runnerList() []*model.Runner {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*model.Runner, len(s.runners))
	copy(result, s.runners)
	return result
}

func (s *session) setAvatar(r *model.Runner, url string) model.Runner {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Avatar = url
	return *r
}

func (s *session) setStats(r *model.Runner, activities []model.Activity, totalSeconds int64, pace float64) model.Runner {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Activities = activities
	r.TotalTimeSeconds = totalSeconds
	r.PaceSeconds = pace
	return *r
}

func (c *controller) ApplySort(criterion model.SortCriterion) error {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()

	if s == nil {
		return errors.New("no event loaded")
	}

	s.sort(criterion)
	return nil
}
