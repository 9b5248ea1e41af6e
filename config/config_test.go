package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEventsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing events file: %v", err)
	}
	return path
}

func TestLoadEvents(t *testing.T) {
	path := writeEventsFile(t, `[
		{
			"id": "spring-5k",
			"name": "Spring 5K",
			"raceId": "309",
			"raceCode": "spring-challenge",
			"members": ["1001", "1002"],
			"whitelist": ["2001"]
		},
		{
			"id": "autumn-10k",
			"name": "Autumn 10K",
			"raceId": "310",
			"raceCode": "autumn-challenge",
			"members": ["1001"],
			"dedupeEntrants": true
		}
	]`)

	events, err := LoadEvents(path)
	if err != nil {
		t.Fatalf("error loading events: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "spring-5k" || events[0].RaceID != "309" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if len(events[0].Members) != 2 || len(events[0].Whitelist) != 1 {
		t.Errorf("unexpected entrants in first event: %+v", events[0])
	}
	if !events[1].DedupeEntrants {
		t.Errorf("expected dedupeEntrants to be set on the second event")
	}
}

func TestLoadEvents_errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "not json", content: "hello", want: "error parsing events file"},
		{name: "empty list", content: "[]", want: "defines no events"},
		{
			name:    "missing race id",
			content: `[{"id": "e1", "raceCode": "c", "members": ["1"]}]`,
			want:    "missing a race id",
		},
		{
			name:    "no entrants",
			content: `[{"id": "e1", "raceId": "1", "raceCode": "c"}]`,
			want:    "has no entrants",
		},
		{
			name: "duplicate event ids",
			content: `[
				{"id": "e1", "raceId": "1", "raceCode": "c", "members": ["1"]},
				{"id": "e1", "raceId": "2", "raceCode": "d", "members": ["2"]}
			]`,
			want: "duplicate event id e1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeEventsFile(t, tc.content)
			_, err := LoadEvents(path)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadEvents_missingFile(t *testing.T) {
	_, err := LoadEvents(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
