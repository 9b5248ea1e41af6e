package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed vracedata
var vracedata embed.FS

// FakeVraceServer serves canned vrace API responses for tests. Fixture users:
//
//	1001 - competitive, 10.5 km in race 309, two activities (3600s / 10000m)
//	1002 - competitive, 20.0 km in race 309, one activity (7000s / 20000m)
//	2001 - whitelisted, 5.0 km in race 309, no activities
//	3001 - provider returns code 500 for every endpoint
//	4001 - has stats only for race 310
//	4002 - race 309 entry present but without a statistic payload
//	5001 - non-numeric total km
type FakeVraceServer struct {
	s *httptest.Server
}

func NewFakeVraceServer() *FakeVraceServer {
	r := chi.NewRouter()
	r.Route("/user", func(r chi.Router) {
		r.Get("/profile-race", profileRaceHandler)
		r.Get("/get-result-activity", resultActivityHandler)
		r.Get("/detail", userDetailHandler)
	})
	r.Get("/race/detail", raceDetailHandler)

	return &FakeVraceServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeVraceServer) Close() {
	f.s.Close()
}

func (f *FakeVraceServer) URL() string {
	return f.s.URL
}

var profileFixtures = map[string]string{
	"1001": "profile_1001.json",
	"1002": "profile_1002.json",
	"2001": "profile_2001.json",
	"4001": "profile_4001.json",
	"4002": "profile_4002.json",
	"5001": "profile_5001.json",
}

func profileRaceHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("myvne_id")
	if f, found := profileFixtures[id]; found {
		serveFile(w, f)
		return
	}
	if id == "3001" {
		serveJSON(w, `{"code": 500, "data": null}`)
		return
	}
	serveJSON(w, `{"code": 404, "data": null}`)
}

var activityFixtures = map[string]string{
	"1001": "activities_1001.json",
	"1002": "activities_1002.json",
}

func resultActivityHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("myvne_id")
	raceID := r.URL.Query().Get("race_id")

	if f, found := activityFixtures[id]; found && raceID == "309" {
		serveFile(w, f)
		return
	}
	if id == "3001" {
		serveJSON(w, `{"code": 500, "data": "internal error"}`)
		return
	}
	serveJSON(w, `{"code": 200, "data": []}`)
}

var raceFixtures = map[string]string{
	"spring-5k": "race_spring.json",
	"tiny":      "race_tiny.json",
	"dup":       "race_dup.json",
	"notime":    "race_notime.json",
}

func raceDetailHandler(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code_url")
	if f, found := raceFixtures[code]; found {
		serveFile(w, f)
		return
	}
	serveJSON(w, `{"code": 404, "data": null}`)
}

var userDetailFixtures = map[string]string{
	"1001": "user_1001.json",
	"1002": "user_1002.json",
	"2001": "user_2001.json",
}

func userDetailHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("myvne_id")
	if f, found := userDetailFixtures[id]; found {
		serveFile(w, f)
		return
	}
	if id == "3001" {
		serveJSON(w, `{"code": 500, "data": null}`)
		return
	}
	serveJSON(w, `{"code": 200, "data": {}}`)
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := vracedata.ReadFile(fmt.Sprintf("vracedata/%s", name))
	if err != nil {
		log.Printf("error reading vracedata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func serveJSON(w http.ResponseWriter, body string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
