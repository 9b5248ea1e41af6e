package model

import (
	"fmt"
	"time"
)

// RaceInfo is the provider's metadata for a race: display name plus the start
// and end of the race window. Timestamps are unix milliseconds, converted from
// the provider's unix seconds by the client.
type RaceInfo struct {
	Name       string `json:"name"`
	FromMillis int64  `json:"fromTime"`
	EndMillis  int64  `json:"endTime"`
}

func (r *RaceInfo) FromTime() time.Time {
	return time.UnixMilli(r.FromMillis).UTC()
}

func (r *RaceInfo) EndTime() time.Time {
	return time.UnixMilli(r.EndMillis).UTC()
}

// FormattedDateRange renders the race window as "dd/mm/yyyy - dd/mm/yyyy".
func (r *RaceInfo) FormattedDateRange() string {
	const layout = "02/01/2006"
	return fmt.Sprintf("%s - %s", r.FromTime().Format(layout), r.EndTime().Format(layout))
}

// RaceStatus is where "now" falls relative to the race window.
type RaceStatus int

const (
	RaceUpcoming RaceStatus = iota
	RaceRunning
	RaceFinished
)

func (r *RaceInfo) Status(now time.Time) RaceStatus {
	if now.Before(r.FromTime()) {
		return RaceUpcoming
	}
	if now.Before(r.EndTime()) {
		return RaceRunning
	}
	return RaceFinished
}

// Countdown renders the time until the race starts or ends, to minute
// precision, matching the dashboard's header ticker.
func (r *RaceInfo) Countdown(now time.Time) string {
	var label string
	var diff time.Duration

	switch r.Status(now) {
	case RaceUpcoming:
		label = "Starts in"
		diff = r.FromTime().Sub(now)
	case RaceRunning:
		label = "Remaining"
		diff = r.EndTime().Sub(now)
	default:
		return "Finished"
	}

	totalSeconds := int64(diff.Seconds())
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%s: %d days %d hours %d minutes", label, days, hours, minutes)
}

// UserRaceStat is one user's summary for a single race as reported by the
// provider's profile-race endpoint.
type UserRaceStat struct {
	UserID  string  `json:"userId"`
	Name    string  `json:"name"`
	TotalKm float64 `json:"totalKm"`
	Ranking string  `json:"ranking"`
}

// Activity is one logged workout contributing to a runner's race total.
type Activity struct {
	ElapsedTime    int64     `json:"elapsedTime"`
	DistanceMeters float64   `json:"distanceMeters"`
	StartDate      time.Time `json:"startDate"`
}
