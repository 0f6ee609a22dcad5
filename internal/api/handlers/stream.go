package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/progress"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler upgrades GET /api/v1/scenarios/:id/solve/stream to a
// websocket carrying stage-completion events. The hub sends every
// solve's events to every connected client; the :id path segment does
// not filter them, and each event carries its own scenario_id.
type StreamHandler struct {
	hub *progress.Hub
}

func NewStreamHandler(hub *progress.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

func (h *StreamHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := progress.NewClient(h.hub, conn)
	client.ReadUntilClose()
}
