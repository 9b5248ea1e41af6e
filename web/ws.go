package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/esleague/ESRace/controller"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
	wsSendBuffer   = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// hub fans runner enrichment updates out to every connected page so a single
// row can be patched without a full re-render.
type hub struct {
	mu      sync.Mutex
	clients map[string]*wsClient
}

func newHub() *hub {
	return &hub{clients: make(map[string]*wsClient)}
}

// runnerUpdated is registered as a controller update listener. It must not
// block, so clients with a full send buffer are dropped.
func (h *hub) runnerUpdated(u controller.RunnerUpdate) {
	data, err := json.Marshal(u)
	if err != nil {
		log.Printf("error marshaling runner update: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("websocket client %s is not keeping up, dropping", id)
			delete(h.clients, id)
			close(c.send)
		}
	}
}

func (h *hub) register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, found := h.clients[c.id]; found {
		delete(h.clients, c.id)
		close(c.send)
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}

func websocketHandler(h *hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("error upgrading websocket: %v", err)
			return
		}

		c := &wsClient{
			id:   uuid.NewString(),
			conn: conn,
			send: make(chan []byte, wsSendBuffer),
		}
		h.register(c)

		go c.writePump()
		c.readPump(h)
	}
}

// readPump only watches for the peer closing the connection. Clients never
// send application messages.
func (c *wsClient) readPump(h *hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
