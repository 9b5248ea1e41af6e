package controller

import (
	"log"
	"sync"

	"github.com/esleague/ESRace/metrics"
	"github.com/esleague/ESRace/vrace"
)

// avatarCache memoizes user id -> avatar URL for the lifetime of the process.
// It is the only state shared across event views. Failed lookups are cached
// as an empty string so they are not retried every time an event reloads.
type avatarCache struct {
	mu   sync.Mutex
	urls map[string]string
}

func newAvatarCache() *avatarCache {
	return &avatarCache{
		urls: make(map[string]string),
	}
}

// get returns the cached avatar URL for the user, fetching it through the
// client on first use. An empty string means the avatar could not be
// resolved. Concurrent first calls for the same id may fetch twice; both
// store the same kind of result, so that is harmless.
func (a *avatarCache) get(userID string, client vrace.Client) string {
	a.mu.Lock()
	url, found := a.urls[userID]
	a.mu.Unlock()
	if found {
		return url
	}

	url, err := client.GetUserAvatar(userID)
	metrics.EnrichmentTask("avatar", err)
	if err != nil {
		log.Printf("error fetching avatar for user %s: %v", userID, err)
		url = ""
	}

	a.mu.Lock()
	a.urls[userID] = url
	a.mu.Unlock()
	return url
}
