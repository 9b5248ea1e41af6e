package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/esleague/ESRace/metrics"
	"github.com/esleague/ESRace/model"
)

func (c *controller) LoadEvent(ctx context.Context, eventID string) (err error) {
	defer func() { metrics.EventLoad(err) }()

	event, err := c.getEvent(eventID)
	if err != nil {
		return err
	}

	start := time.Now()
	ids := event.EntrantIDs()
	log.Printf("loading event %s with %d entrants", event.ID, len(ids))

	// Race metadata and the stat batch are independent: a failure in one
	// must not block the other. The metadata fetch runs alongside the batch
	// and a nil result just means the header block has nothing to show.
	var raceInfo *model.RaceInfo
	var infoWG sync.WaitGroup
	infoWG.Add(1)
	go func() {
		defer infoWG.Done()
		info, err := c.vrace.GetRaceInfo(event.RaceCode)
		if err != nil {
			log.Printf("error fetching race info for %s: %v", event.RaceCode, err)
			return
		}
		raceInfo = info
	}()

	results := c.fetchRaceStats(ids)
	infoWG.Wait()

	runners := buildRunners(event, results)
	log.Printf("event %s loaded %d runners in %v", event.ID, len(runners), time.Since(start))

	c.mu.Lock()
	c.generation++
	s := newSession(c.generation, *event, raceInfo, runners)
	c.session = s
	c.mu.Unlock()

	// Enrichment runs detached; the leaderboard is already displayable.
	go c.enrich(s)

	return nil
}

// fetchRaceStats issues every profile-race request concurrently and waits for
// all of them to settle. Results keep the input order; a failed fetch leaves
// a nil entry rather than aborting the batch.
func (c *controller) fetchRaceStats(ids []string) []map[string]model.UserRaceStat {
	results := make([]map[string]model.UserRaceStat, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			stats, err := c.vrace.GetUserRaceStats(id)
			if err != nil {
				log.Printf("error fetching race stats for user %s: %v", id, err)
				return
			}
			results[i] = stats
		}(i, id)
	}
	wg.Wait()

	return results
}

// buildRunners merges the settled stat responses into the initial runner
// collection, ordered by distance. Users without a statistic payload for the
// event's race are dropped silently.
func buildRunners(event *model.Event, results []map[string]model.UserRaceStat) []*model.Runner {
	runners := make([]*model.Runner, 0, len(results))
	for _, stats := range results {
		if stats == nil {
			continue
		}
		s, found := stats[event.RaceID]
		if !found {
			continue
		}

		// whitelist wins: an id in both lists is non-competitive
		competitive := !event.IsWhitelisted(s.UserID)
		runners = append(runners, model.NewRunner(s.UserID, s.Name, s.TotalKm, s.Ranking, competitive))
	}

	model.SortRunners(runners, model.SortDistance)
	return runners
}
