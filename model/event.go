package model

import (
	"fmt"
	"strings"
)

// Event is a configured race competition. Members race competitively,
// whitelist ids are shown on the leaderboard but marked non-competitive.
// An id present in both lists is treated as whitelisted.
type Event struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	RaceID    string   `json:"raceId"`
	RaceCode  string   `json:"raceCode"`
	Members   []string `json:"members"`
	Whitelist []string `json:"whitelist"`
	// The provider returns one response per requested id, so a duplicated id
	// normally produces a duplicated leaderboard row. Set DedupeEntrants to
	// collapse duplicates before fetching instead.
	DedupeEntrants bool `json:"dedupeEntrants"`
}

func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event is missing an id")
	}
	if e.RaceID == "" {
		return fmt.Errorf("event %s is missing a race id", e.ID)
	}
	if e.RaceCode == "" {
		return fmt.Errorf("event %s is missing a race code", e.ID)
	}
	if len(e.Members)+len(e.Whitelist) == 0 {
		return fmt.Errorf("event %s has no entrants", e.ID)
	}
	return nil
}

// EntrantIDs returns the members followed by the whitelist. Duplicates are
// kept unless DedupeEntrants is set, in which case the first occurrence wins.
func (e *Event) EntrantIDs() []string {
	ids := make([]string, 0, len(e.Members)+len(e.Whitelist))
	ids = append(ids, e.Members...)
	ids = append(ids, e.Whitelist...)

	if !e.DedupeEntrants {
		return ids
	}

	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		n := NormalizeUserID(id)
		if seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, id)
	}
	return result
}

// IsWhitelisted reports whether the id is in the event's whitelist, using the
// same normalization applied to ids everywhere else.
func (e *Event) IsWhitelisted(id string) bool {
	n := NormalizeUserID(id)
	for _, w := range e.Whitelist {
		if NormalizeUserID(w) == n {
			return true
		}
	}
	return false
}

// NormalizeUserID trims whitespace so ids copied from event config compare
// equal to the ids the provider echoes back.
func NormalizeUserID(id string) string {
	return strings.TrimSpace(id)
}
