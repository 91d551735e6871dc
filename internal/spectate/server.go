package spectate

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"tankduel/internal/arena"
)

// TicksPerSecond is the real-time battle cadence when spectated.
const TicksPerSecond = 20

var tickInterval = time.Second / TicksPerSecond

// Client wraps one spectator connection. Writes go through a buffered send
// channel; when a slow client falls behind, stale snapshots are dropped
// rather than letting backpressure stall the tick loop.
type Client struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewClient wraps a websocket connection.
func NewClient(ws *websocket.Conn) *Client {
	return &Client{
		ws:   ws,
		send: make(chan []byte, 64),
	}
}

// Enqueue queues a message for the client, dropping it if the buffer is full.
func (c *Client) Enqueue(b []byte) {
	select {
	case c.send <- b:
	default:
		// Slow spectator: the next snapshot supersedes this one anyway.
	}
}

// writePump drains the send channel onto the wire.
func (c *Client) writePump() {
	defer c.ws.Close()
	for msg := range c.send {
		_ = c.ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump consumes (and discards) inbound frames so pings and close frames
// are processed. Spectators have no command surface.
func (c *Client) readPump(h *Hub) {
	defer c.ws.Close()
	defer h.remove(c)
	c.ws.SetReadLimit(1 << 16)
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

// Hub owns one battle and its spectators. The battle advances on a single
// goroutine; clients only ever receive.
type Hub struct {
	sim *arena.BattleSim

	mu      sync.Mutex
	clients map[*Client]struct{}

	started bool
}

// NewHub creates a hub around a prepared battle.
func NewHub(sim *arena.BattleSim) *Hub {
	return &Hub{
		sim:     sim,
		clients: make(map[*Client]struct{}),
	}
}

// Start launches the tick loop. The battle keeps running after the round is
// decided so spectators see the victory routine; maxTicks bounds the whole
// session. Start returns once the loop goroutine is launched.
func (h *Hub) Start(maxTicks int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return
	}
	h.started = true

	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for range ticker.C {
			h.sim.Engine.Step()
			h.broadcast()
			if h.sim.Engine.TickCount() >= maxTicks {
				Log.Infow("battle ended", "ticks", h.sim.Engine.TickCount())
				return
			}
		}
	}()
}

// broadcast serializes the current snapshot and fans it out.
func (h *Hub) broadcast() {
	snap := h.sim.Snapshot()
	payload := struct {
		Type string            `json:"type"`
		Snap arena.SimSnapshot `json:"snapshot"`
	}{Type: "state", Snap: snap}
	b, err := json.Marshal(payload)
	if err != nil {
		Log.Errorw("snapshot marshal failed", "err", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Enqueue(b)
	}
}

// add registers a spectator.
func (h *Hub) add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// remove drops a spectator and closes its send channel.
func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// SpectatorCount returns the number of connected spectators.
func (h *Hub) SpectatorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Spectator-only feed; any origin may watch.
		return true
	},
}

// HandleWS upgrades an HTTP request to a spectator connection.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.Warnw("websocket upgrade failed", "err", err, "remote", r.RemoteAddr)
		return
	}
	c := NewClient(ws)
	h.add(c)
	Log.Infow("spectator joined", "remote", r.RemoteAddr, "count", h.SpectatorCount())

	go c.writePump()
	go c.readPump(h)
}
