package web

import (
	"testing"
	"time"

	"github.com/esleague/ESRace/model"
)

func TestRankFormatter(t *testing.T) {
	competitive := *model.NewRunner("u1", "Alice", 10, "5", true)
	guest := *model.NewRunner("u2", "Bob", 12, "", false)

	tests := []struct {
		name     string
		position int
		runner   model.Runner
		want     string
	}{
		{name: "first place", position: 0, runner: competitive, want: "1"},
		{name: "tenth place", position: 9, runner: competitive, want: "10"},
		{name: "guest holds no place", position: 0, runner: guest, want: "-"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rankFormatter(tc.position, tc.runner)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestDateRangeFormatter(t *testing.T) {
	ri := &model.RaceInfo{
		FromMillis: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		EndMillis:  time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}

	tests := []struct {
		name string
		ri   *model.RaceInfo
		want string
	}{
		{name: "window", ri: ri, want: "01/03/2024 - 31/03/2024"},
		{name: "missing metadata", ri: nil, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := dateRangeFormatter(tc.ri)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
