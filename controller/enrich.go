package controller

import (
	"log"
	"math"
	"sync"

	"github.com/esleague/ESRace/metrics"
	"github.com/esleague/ESRace/model"
)

// No more than this many per-runner enrichment tasks run at once.
const enrichmentWorkers = 5

// enrich augments every runner of the session with avatar and activity data,
// using a fixed pool of workers. It never re-sorts or removes runners; it
// mutates fields in place and notifies listeners per completed step. Tasks
// from a session that has been replaced by a newer LoadEvent do nothing.
func (c *controller) enrich(s *session) {
	runners := s.runnerList()

	ch := make(chan *model.Runner)
	var wg sync.WaitGroup
	for i := 0; i < enrichmentWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range ch {
				c.enrichRunner(s, r)
			}
		}()
	}

	for _, r := range runners {
		ch <- r
	}
	close(ch)
	wg.Wait()

	if c.isCurrent(s) {
		log.Printf("enrichment finished for event %s", s.event.ID)
	}
	if c.enrichFinished != nil {
		c.enrichFinished(s.event.ID, s.generation)
	}
}

// enrichRunner resolves the avatar and activity stats for one runner. The two
// steps fail independently and silently; a runner whose fetches fail keeps
// its placeholder values for the rest of the session.
func (c *controller) enrichRunner(s *session, r *model.Runner) {
	metrics.EnrichmentStarted()
	defer metrics.EnrichmentFinished()

	if !c.isCurrent(s) {
		return
	}

	if avatar := c.avatars.get(r.ID, c.vrace); avatar != "" {
		if c.isCurrent(s) {
			updated := s.setAvatar(r, avatar)
			c.notify(RunnerUpdate{
				Generation: s.generation,
				EventID:    s.event.ID,
				Kind:       UpdateAvatar,
				Runner:     updated,
			})
		}
	}

	activities, err := c.vrace.GetUserActivities(r.ID, s.event.RaceID)
	metrics.EnrichmentTask("activities", err)
	if err != nil {
		log.Printf("error fetching activities for user %s: %v", r.ID, err)
		return
	}

	totalSeconds, pace := computePace(activities)
	if c.isCurrent(s) {
		updated := s.setStats(r, activities, totalSeconds, pace)
		c.notify(RunnerUpdate{
			Generation: s.generation,
			EventID:    s.event.ID,
			Kind:       UpdateStats,
			Runner:     updated,
		})
	}
}

// computePace sums the activity times and distances and derives seconds per
// kilometer. Zero total distance means no pace data, represented as +Inf.
func computePace(activities []model.Activity) (int64, float64) {
	var totalSeconds int64
	var totalMeters float64
	for _, a := range activities {
		totalSeconds += a.ElapsedTime
		totalMeters += a.DistanceMeters
	}

	if totalMeters <= 0 {
		return totalSeconds, math.Inf(1)
	}
	return totalSeconds, float64(totalSeconds) / (totalMeters / 1000)
}
