package web

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/esleague/ESRace/controller"
	"github.com/esleague/ESRace/controller/mockcontroller"
	"github.com/esleague/ESRace/model"
	"github.com/gorilla/websocket"
	"github.com/itbasis/go-clock"
)

func TestWebsocketBroadcast(t *testing.T) {
	mc := &mockcontroller.C{}
	h := newHub()
	server := httptest.NewServer(getRouter(mc, newRender(clock.New()), h))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("error dialing websocket: %v", err)
	}
	defer conn.Close()

	waitForClients(t, h, 1)

	runner := model.NewRunner("u1", "Alice", 42.5, "12", true)
	runner.TotalTimeSeconds = 7200
	runner.PaceSeconds = 300
	h.runnerUpdated(controller.RunnerUpdate{
		Generation: 3,
		EventID:    "spring-5k",
		Kind:       controller.UpdateStats,
		Runner:     *runner,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("error reading websocket message: %v", err)
	}

	var got controller.RunnerUpdate
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("error decoding update: %v", err)
	}
	if got.Generation != 3 || got.EventID != "spring-5k" || got.Kind != controller.UpdateStats {
		t.Errorf("unexpected update: %+v", got)
	}
	if got.Runner.ID != "u1" || got.Runner.TotalTimeSeconds != 7200 {
		t.Errorf("unexpected runner in update: %+v", got.Runner)
	}
}

func TestWebsocketDisconnectUnregisters(t *testing.T) {
	mc := &mockcontroller.C{}
	h := newHub()
	server := httptest.NewServer(getRouter(mc, newRender(clock.New()), h))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("error dialing websocket: %v", err)
	}

	waitForClients(t, h, 1)
	conn.Close()
	waitForClients(t, h, 0)
}

func waitForClients(t *testing.T, h *hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.Lock()
		n := len(h.clients)
		h.mu.Unlock()
		if n == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d websocket clients", want)
}
