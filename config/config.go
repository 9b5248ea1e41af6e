// Package config loads the event definitions the dashboard serves. Events
// are declared in a JSON file rather than a database so a deployment is just
// the binary plus one file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/esleague/ESRace/model"
)

// LoadEvents reads and validates the event definitions at path.
func LoadEvents(path string) ([]model.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading events file: %w", err)
	}

	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("error parsing events file %s: %w", path, err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("events file %s defines no events", path)
	}

	seen := make(map[string]bool)
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid event %s: %w", events[i].ID, err)
		}
		if seen[events[i].ID] {
			return nil, fmt.Errorf("duplicate event id %s", events[i].ID)
		}
		seen[events[i].ID] = true
	}

	return events, nil
}
