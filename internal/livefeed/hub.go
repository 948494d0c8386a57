// Package livefeed is the engine's websocket broadcast hub: it pushes
// post-tick property-slot diffs to connected debug clients (a
// browser-based timeline viewer, a headless test harness watching an
// animation play out) instead of recomputing them by polling the HTTP
// surface every frame.
package livefeed

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMessageSize  = 8192
	sendBufferSize  = 64
	broadcastBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// PropertyDiff is one changed property slot on one track, as of the
// tick that produced it.
type PropertyDiff struct {
	Track       string    `json:"track"`
	Property    string    `json:"property"`
	Kind        string    `json:"kind"`
	Components  []float32 `json:"components"`
	LastUpdated int64     `json:"last_updated_unix_ms"`
}

// TickMessage is the broadcast payload for one tick: the song time it
// was computed at, and every property that changed since the
// previous broadcast.
type TickMessage struct {
	SongTime float32        `json:"song_time"`
	Diffs    []PropertyDiff `json:"diffs"`
}

// Client is one connected debug websocket.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains every connected Client and fans broadcast messages out
// to all of them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub builds an empty Hub. Call Run in its own goroutine to start
// servicing register/unregister/broadcast.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run services the hub's channels until the process exits. Intended
// to be started with `go hub.Run()`.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			log.Printf("[livefeed] client connected (%d total)", h.clientCount())

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			log.Printf("[livefeed] client disconnected (%d total)", h.clientCount())

		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					log.Printf("[livefeed] client send buffer full, dropping")
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastTick marshals msg and enqueues it for every connected
// client.
func (h *Hub) BroadcastTick(msg TickMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	h.broadcast <- data
	return nil
}

// ServeWS upgrades r into a websocket connection and registers it
// with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[livefeed] upgrade failed: %v", err)
		return
	}

	c := &Client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

// readPump drains and discards client messages (this hub is
// broadcast-only) but keeps the read deadline/pong handling alive so
// dead connections are detected and unregistered.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
