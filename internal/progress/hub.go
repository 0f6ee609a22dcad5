// Package progress streams DP Solver stage-completion events to
// connected dashboard clients over a websocket, adapting the solve's
// optional solver.ProgressFunc hook into broadcast traffic.
package progress

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// StageEvent is one station-expansion's progress update.
type StageEvent struct {
	Type          string `json:"type"`
	ScenarioID    string `json:"scenario_id"`
	StationIndex  int    `json:"station_index"`
	FrontierSize  int    `json:"frontier_size"`
}

// Client represents a connected progress-stream websocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans solve progress out to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Broadcast sends msg to every connected client, dropping it for any
// client whose send buffer is full rather than blocking the solve.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			log.Printf("progress: client buffer full, dropping stage event")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// NewClient registers conn with the hub and starts its write pump.
func NewClient(h *Hub, conn *websocket.Conn) *Client {
	c := &Client{hub: h, conn: conn, send: make(chan []byte, 64)}
	h.Register(c)
	go c.writePump()
	return c
}

// ReadUntilClose blocks, discarding any client-sent frames, until the
// connection closes, then unregisters c. Dashboards are read-only
// consumers of the stream; this just detects disconnects.
func (c *Client) ReadUntilClose() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// SolveProgressFunc adapts a Hub into a solver.ProgressFunc-shaped
// closure (kept untyped here so internal/progress does not need to
// import internal/solver).
func SolveProgressFunc(h *Hub, scenarioID string) func(stationIndex, frontierSize int) {
	return func(stationIndex, frontierSize int) {
		ev := StageEvent{
			Type:         "solve:stage",
			ScenarioID:   scenarioID,
			StationIndex: stationIndex,
			FrontierSize: frontierSize,
		}
		msg, err := json.Marshal(ev)
		if err != nil {
			log.Printf("progress: failed to marshal stage event: %v", err)
			return
		}
		h.Broadcast(msg)
	}
}
