package model

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

// Runner is one participant's aggregated record for a single event view.
// ID, Name, TotalKm, Ranking and IsCompetitive are fixed when the runner is
// built from the race-stat response. Avatar, Activities, TotalTimeSeconds and
// PaceSeconds start at their zero values and are filled in later by the
// background enrichment pass.
type Runner struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Avatar        string  `json:"avatar"`
	TotalKm       float64 `json:"totalKm"`
	Ranking       string  `json:"ranking"`
	IsCompetitive bool    `json:"isCompetitive"`

	TotalTimeSeconds int64      `json:"totalTimeSeconds"`
	PaceSeconds      float64    `json:"paceSeconds"`
	Activities       []Activity `json:"activities,omitempty"`
}

// NewRunner builds a runner with enrichment fields at their "unknown"
// defaults. PaceSeconds is +Inf until activity data arrives.
func NewRunner(id, name string, totalKm float64, ranking string, competitive bool) *Runner {
	return &Runner{
		ID:            NormalizeUserID(id),
		Name:          name,
		TotalKm:       totalKm,
		Ranking:       ranking,
		IsCompetitive: competitive,
		PaceSeconds:   math.Inf(1),
	}
}

// MarshalJSON emits the unknown pace as null. encoding/json cannot
// represent +Inf and would otherwise fail the whole document.
func (r Runner) MarshalJSON() ([]byte, error) {
	type alias Runner
	out := struct {
		alias
		PaceSeconds *float64 `json:"paceSeconds"`
	}{alias: alias(r)}
	if !math.IsInf(r.PaceSeconds, 1) {
		out.PaceSeconds = &r.PaceSeconds
	}
	return json.Marshal(out)
}

// Enriched reports whether activity data has been applied to this runner.
func (r *Runner) Enriched() bool {
	return r.Activities != nil
}

func (r *Runner) FormattedTotalKm() string {
	return fmt.Sprintf("%.2f km", r.TotalKm)
}

func (r *Runner) FormattedRanking() string {
	if r.Ranking == "" {
		return "-"
	}
	return "#" + r.Ranking
}

func (r *Runner) FormattedTotalTime() string {
	if r.TotalTimeSeconds == 0 {
		return "-"
	}
	h := r.TotalTimeSeconds / 3600
	m := (r.TotalTimeSeconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// FormattedPace renders the pace as m'ss" per km, or "-" when no pace data
// is available.
func (r *Runner) FormattedPace() string {
	if math.IsInf(r.PaceSeconds, 1) {
		return "-"
	}
	total := int64(math.Round(r.PaceSeconds))
	return fmt.Sprintf("%d'%02d\"", total/60, total%60)
}

// SortCriterion selects the leaderboard ordering.
type SortCriterion string

const (
	SortDistance SortCriterion = "distance"
	SortTime     SortCriterion = "time"
	SortPace     SortCriterion = "pace"
)

func ParseSortCriterion(s string) (SortCriterion, error) {
	switch SortCriterion(s) {
	case SortDistance, SortTime, SortPace:
		return SortCriterion(s), nil
	}
	return "", fmt.Errorf("unknown sort criterion: %q", s)
}

// SortRunners orders the collection in place. Distance and time sort
// descending, pace sorts ascending with +Inf (no data) entries last. The sort
// is stable so runners with equal values keep their arrival order.
func SortRunners(runners []*Runner, criterion SortCriterion) {
	if len(runners) == 0 {
		return
	}

	switch criterion {
	case SortTime:
		slices.SortStableFunc(runners, func(a, b *Runner) int {
			if a.TotalTimeSeconds > b.TotalTimeSeconds {
				return -1
			} else if a.TotalTimeSeconds < b.TotalTimeSeconds {
				return 1
			}
			return 0
		})
	case SortPace:
		slices.SortStableFunc(runners, func(a, b *Runner) int {
			// +Inf compares equal to +Inf, so all-unknown input keeps its order.
			if a.PaceSeconds < b.PaceSeconds {
				return -1
			} else if a.PaceSeconds > b.PaceSeconds {
				return 1
			}
			return 0
		})
	default: // SortDistance
		slices.SortStableFunc(runners, func(a, b *Runner) int {
			if a.TotalKm > b.TotalKm {
				return -1
			} else if a.TotalKm < b.TotalKm {
				return 1
			}
			return 0
		})
	}
}
