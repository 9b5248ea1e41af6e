package model

import (
	"math"
	"testing"
)

func TestSortRunners_distance(t *testing.T) {
	runners := []*Runner{
		NewRunner("a", "A", 10.5, "", true),
		NewRunner("b", "B", 20.0, "", true),
		NewRunner("c", "C", 5.0, "", false),
		NewRunner("d", "D", 20.0, "", true),
	}

	SortRunners(runners, SortDistance)

	for i := 1; i < len(runners); i++ {
		if runners[i].TotalKm > runners[i-1].TotalKm {
			t.Errorf("runners not sorted by distance at index %d: %f > %f",
				i, runners[i].TotalKm, runners[i-1].TotalKm)
		}
	}
	// Stable sort keeps B before D for the 20.0 tie.
	if runners[0].ID != "b" || runners[1].ID != "d" {
		t.Errorf("expected b,d at the top, got %s,%s", runners[0].ID, runners[1].ID)
	}
}

func TestSortRunners_time(t *testing.T) {
	runners := []*Runner{
		NewRunner("a", "A", 10.5, "", true),
		NewRunner("b", "B", 20.0, "", true),
		NewRunner("c", "C", 5.0, "", false),
	}
	runners[0].TotalTimeSeconds = 3600
	runners[1].TotalTimeSeconds = 7000

	SortRunners(runners, SortTime)

	expected := []string{"b", "a", "c"}
	for i, id := range expected {
		if runners[i].ID != id {
			t.Errorf("expected %s at index %d, got %s", id, i, runners[i].ID)
		}
	}
}

func TestSortRunners_pace(t *testing.T) {
	runners := []*Runner{
		NewRunner("a", "A", 10.5, "", true),
		NewRunner("b", "B", 20.0, "", true),
		NewRunner("c", "C", 5.0, "", false),
	}
	runners[0].PaceSeconds = 360
	runners[1].PaceSeconds = 350
	// c keeps its +Inf default

	SortRunners(runners, SortPace)

	expected := []string{"b", "a", "c"}
	for i, id := range expected {
		if runners[i].ID != id {
			t.Errorf("expected %s at index %d, got %s", id, i, runners[i].ID)
		}
	}
	if !math.IsInf(runners[2].PaceSeconds, 1) {
		t.Errorf("expected +Inf pace to sort last")
	}
}

func TestSortRunners_paceAllUnknown(t *testing.T) {
	runners := []*Runner{
		NewRunner("a", "A", 10.5, "", true),
		NewRunner("b", "B", 20.0, "", true),
		NewRunner("c", "C", 5.0, "", false),
	}

	SortRunners(runners, SortPace)

	// All paces are +Inf, so input order is preserved.
	expected := []string{"a", "b", "c"}
	for i, id := range expected {
		if runners[i].ID != id {
			t.Errorf("expected %s at index %d, got %s", id, i, runners[i].ID)
		}
	}
}

func TestSortRunners_empty(t *testing.T) {
	SortRunners(nil, SortDistance)
	SortRunners([]*Runner{}, SortPace)
}

func TestParseSortCriterion(t *testing.T) {
	tests := []struct {
		input string
		want  SortCriterion
		ok    bool
	}{
		{input: "distance", want: SortDistance, ok: true},
		{input: "time", want: SortTime, ok: true},
		{input: "pace", want: SortPace, ok: true},
		{input: "elevation", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSortCriterion(tc.input)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Errorf("expected %v, got %v", tc.want, got)
				}
			} else if err == nil {
				t.Errorf("expected an error for %q", tc.input)
			}
		})
	}
}

func TestFormattedPace(t *testing.T) {
	tests := []struct {
		pace float64
		want string
	}{
		{pace: 360, want: "6'00\""},
		{pace: 350, want: "5'50\""},
		{pace: 359.6, want: "6'00\""},
		{pace: math.Inf(1), want: "-"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			r := NewRunner("a", "A", 10, "", true)
			r.PaceSeconds = tc.pace
			if got := r.FormattedPace(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormattedTotalTime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{seconds: 0, want: "-"},
		{seconds: 3600, want: "1h00m"},
		{seconds: 7265, want: "2h01m"},
		{seconds: 540, want: "9m"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			r := NewRunner("a", "A", 10, "", true)
			r.TotalTimeSeconds = tc.seconds
			if got := r.FormattedTotalTime(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormattedRanking(t *testing.T) {
	r := NewRunner("a", "A", 10, "123", true)
	if got := r.FormattedRanking(); got != "#123" {
		t.Errorf("expected #123, got %s", got)
	}

	r = NewRunner("a", "A", 10, "", true)
	if got := r.FormattedRanking(); got != "-" {
		t.Errorf("expected -, got %s", got)
	}
}
