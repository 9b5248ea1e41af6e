package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/esleague/ESRace/model"
	"github.com/esleague/ESRace/vrace"
	"github.com/itbasis/go-clock"
)

// ErrUnknownEvent is returned when an event id is not part of the
// configured event set.
var ErrUnknownEvent = errors.New("unknown event")

// C encapsulates the leaderboard pipeline without worrying about any web layers
type C interface {
	ListEvents() []model.Event
	// LoadEvent runs the initial aggregation for the event: it fetches every
	// entrant's race stats, builds a fresh runner collection sorted by
	// distance, and kicks off background enrichment. It returns once the
	// collection is ready for display; enrichment continues after it returns.
	LoadEvent(ctx context.Context, eventID string) error
	// ApplySort reorders the current runner collection. Reapplying the active
	// criterion is how newly enriched time/pace data becomes visible.
	ApplySort(criterion model.SortCriterion) error
	// Snapshot returns a copy of the current leaderboard view, or false when
	// no event has been loaded yet.
	Snapshot() (*View, bool)
	// AddUpdateListener registers a callback invoked once per runner
	// enrichment step (avatar resolved, stats computed). Callbacks must not
	// block.
	AddUpdateListener(l func(RunnerUpdate))
}

// View is a copy of the current leaderboard state, safe to read without
// holding any locks. RaceInfo is nil when the metadata fetch failed; the
// leaderboard is still valid in that case.
type View struct {
	Event      model.Event
	RaceInfo   *model.RaceInfo
	Criterion  model.SortCriterion
	Generation int64
	Runners    []model.Runner
}

// UpdateKind identifies which enrichment step produced a RunnerUpdate.
type UpdateKind string

const (
	UpdateAvatar UpdateKind = "avatar"
	UpdateStats  UpdateKind = "stats"
)

// RunnerUpdate is the incremental notification sent to listeners when a
// background enrichment step lands, so renderers can patch a single row.
type RunnerUpdate struct {
	Generation int64        `json:"generation"`
	EventID    string       `json:"eventId"`
	Kind       UpdateKind   `json:"kind"`
	Runner     model.Runner `json:"runner"`
}

type controller struct {
	clock   clock.Clock
	vrace   vrace.Client
	events  []model.Event
	avatars *avatarCache

	mu         sync.Mutex
	session    *session
	generation int64
	listeners  []func(RunnerUpdate)

	// test hook, invoked when an enrichment pass drains, current or not
	enrichFinished func(eventID string, generation int64)
}

func New(clock clock.Clock, client vrace.Client, events []model.Event) (C, error) {
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return nil, err
		}
	}

	c := &controller{
		clock:   clock,
		vrace:   client,
		events:  events,
		avatars: newAvatarCache(),
	}
	return c, nil
}

func (c *controller) ListEvents() []model.Event {
	result := make([]model.Event, len(c.events))
	copy(result, c.events)
	return result
}

func (c *controller) getEvent(id string) (*model.Event, error) {
	for i := range c.events {
		if c.events[i].ID == id {
			return &c.events[i], nil
		}
	}
	return nil, fmt.Errorf("no event with id %s: %w", id, ErrUnknownEvent)
}

func (c *controller) Snapshot() (*View, bool) {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()

	if s == nil {
		return nil, false
	}
	return s.snapshot(), true
}

func (c *controller) AddUpdateListener(l func(RunnerUpdate)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *controller) notify(u RunnerUpdate) {
	c.mu.Lock()
	listeners := make([]func(RunnerUpdate), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l(u)
	}
}

// isCurrent reports whether s is still the active session. Enrichment tasks
// from a superseded event load use this to turn themselves into no-ops.
func (c *controller) isCurrent(s *session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session == s
}
