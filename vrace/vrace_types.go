package vrace

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/esleague/ESRace/model"
)

type statResponse struct {
	Code int                  `json:"code"`
	Data map[string]raceEntry `json:"data"`
}

type raceEntry struct {
	StatisticUser *statisticUser `json:"statistic_user"`
}

type statisticUser struct {
	UserName string          `json:"user_name"`
	TotalKm  string          `json:"total_km_achieve"`
	Ranking  json.RawMessage `json:"ranking"`
}

func (s *statisticUser) toStat(userID string) model.UserRaceStat {
	return model.UserRaceStat{
		UserID:  userID,
		Name:    s.UserName,
		TotalKm: parseKm(s.TotalKm, userID),
		Ranking: rankingString(s.Ranking),
	}
}

// The provider reports the distance as text. Anything that doesn't parse
// counts as zero.
func parseKm(km, userID string) float64 {
	if km == "" {
		return 0
	}
	v, err := strconv.ParseFloat(km, 64)
	if err != nil {
		log.Printf("error parsing total km %q for user %s: %v", km, userID, err)
		return 0
	}
	return v
}

// rankingString passes the provider's global rank through opaquely. The field
// has been observed as a number, a quoted number, and null.
func rankingString(raw json.RawMessage) string {
	s := string(raw)
	if s == "" || s == "null" {
		return ""
	}
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		return quoted
	}
	return s
}

type activitiesResponse struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

type activityEntry struct {
	ElapsedTime float64 `json:"elapsed_time"`
	Distance    float64 `json:"distance"`
	StartDate   int64   `json:"start_date"`
}

func (a *activityEntry) toActivity() model.Activity {
	return model.Activity{
		ElapsedTime:    int64(a.ElapsedTime),
		DistanceMeters: a.Distance,
		StartDate:      time.Unix(a.StartDate, 0),
	}
}

type raceDetailResponse struct {
	Code int                   `json:"code"`
	Data map[string]raceDetail `json:"data"`
}

type raceDetail struct {
	Name     string    `json:"name"`
	RaceTime *raceTime `json:"race_time"`
}

type raceTime struct {
	FromTime int64 `json:"from_time"`
	ToTime   int64 `json:"to_time"`
}

func (d *raceDetail) toRaceInfo() *model.RaceInfo {
	return &model.RaceInfo{
		Name:       d.Name,
		FromMillis: d.RaceTime.FromTime * 1000,
		EndMillis:  d.RaceTime.ToTime * 1000,
	}
}

type userDetailResponse struct {
	Code int                   `json:"code"`
	Data map[string]userDetail `json:"data"`
}

type userDetail struct {
	Avatar string `json:"avatar"`
}
