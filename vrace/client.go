package vrace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/esleague/ESRace/metrics"
	"github.com/esleague/ESRace/model"
	"golang.org/x/time/rate"
)

const VraceURL = "https://apivrace.vnexpress.net"

// The provider wraps every payload in an envelope with its own status code,
// independent of the HTTP status.
const successCode = 200

type Client interface {
	// GetUserRaceStats returns the user's summaries keyed by race id, for
	// every race the provider has data for. A missing race id key means the
	// user has no data for that race; it is not an error.
	GetUserRaceStats(userID string) (map[string]model.UserRaceStat, error)
	// GetUserActivities returns the individual logged activities behind a
	// user's total for one race. A provider-reported failure yields an empty
	// slice rather than an error; only transport problems are errors.
	GetUserActivities(userID, raceID string) ([]model.Activity, error)
	// GetRaceInfo resolves a human race code to the race name and window.
	GetRaceInfo(code string) (*model.RaceInfo, error)
	// GetUserAvatar resolves a user's profile image URL.
	GetUserAvatar(userID string) (string, error)
}

type client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New() (Client, error) {
	return NewWithURL(VraceURL)
}

// NewWithURL points the client at an alternate API host, for deployments
// behind a caching proxy.
func NewWithURL(url string) (Client, error) {
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func (c *client) GetUserRaceStats(userID string) (map[string]model.UserRaceStat, error) {
	var resp statResponse
	err := c.vraceRequest(&resp, "profile-race",
		"/user/profile-race?myvne_id=%s&type=1&offset=0&limit=6&action=1&lang=vi",
		url.QueryEscape(userID))
	if err != nil {
		return nil, err
	}

	if resp.Code != successCode {
		return nil, fmt.Errorf("vrace profile-race returned code %d for user %s", resp.Code, userID)
	}

	result := make(map[string]model.UserRaceStat, len(resp.Data))
	for raceID, entry := range resp.Data {
		// Races without a statistic payload are treated as "no data".
		if entry.StatisticUser == nil {
			continue
		}
		result[raceID] = entry.StatisticUser.toStat(userID)
	}
	return result, nil
}

func (c *client) GetUserActivities(userID, raceID string) ([]model.Activity, error) {
	var resp activitiesResponse
	err := c.vraceRequest(&resp, "get-result-activity",
		"/user/get-result-activity?myvne_id=%s&race_id=%s",
		url.QueryEscape(userID), url.QueryEscape(raceID))
	if err != nil {
		return nil, err
	}

	if resp.Code != successCode {
		return []model.Activity{}, nil
	}

	var entries []activityEntry
	if err := json.Unmarshal(resp.Data, &entries); err != nil {
		// data was not an array, which the provider does on some failures
		return []model.Activity{}, nil
	}

	result := make([]model.Activity, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.toActivity())
	}
	return result, nil
}

func (c *client) GetRaceInfo(code string) (*model.RaceInfo, error) {
	var resp raceDetailResponse
	err := c.vraceRequest(&resp, "race-detail",
		"/race/detail?code_url=%s&select=statistic&lang=vi",
		url.QueryEscape(code))
	if err != nil {
		return nil, err
	}

	if resp.Code != successCode || resp.Data == nil {
		return nil, fmt.Errorf("vrace race detail returned code %d for race %s", resp.Code, code)
	}

	// The response is keyed by an internal race id we don't know in advance.
	// A code-scoped query should match exactly one race; anything else is a
	// provider inconsistency we refuse to guess about.
	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("expected exactly one race for code %s, got %d", code, len(resp.Data))
	}

	for _, d := range resp.Data {
		if d.RaceTime == nil {
			return nil, errors.New("race time not found in race detail response")
		}
		return d.toRaceInfo(), nil
	}
	return nil, errors.New("unreachable")
}

func (c *client) GetUserAvatar(userID string) (string, error) {
	var resp userDetailResponse
	err := c.vraceRequest(&resp, "user-detail", "/user/detail?myvne_id=%s", url.QueryEscape(userID))
	if err != nil {
		return "", err
	}

	if resp.Code != successCode {
		return "", fmt.Errorf("vrace user detail returned code %d for user %s", resp.Code, userID)
	}

	d, found := resp.Data[userID]
	if !found {
		return "", fmt.Errorf("no detail entry for user %s", userID)
	}
	return d.Avatar, nil
}

func (c *client) vraceRequest(res any, endpoint, path string, args ...any) (err error) {
	defer func() { metrics.RemoteRequest(endpoint, err) }()

	if err = c.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("error waiting for vrace rate limiter: %w", err)
	}

	p := fmt.Sprintf(path, args...)
	// The provider expects a cache-busting timestamp on every request.
	sep := "?"
	if strings.Contains(p, "?") {
		sep = "&"
	}
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s%s_=%d", c.url, p, sep, time.Now().UnixMilli()), nil)
	if err != nil {
		return fmt.Errorf("error creating vrace http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending vrace http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from vrace: %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(res); err != nil {
		return fmt.Errorf("error parsing response from vrace: %w", err)
	}

	return nil
}
