package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient builds a Client with no real websocket connection, for
// exercising Hub bookkeeping and broadcast delivery without a socket.
func fakeClient(h *Hub) *Client {
	return &Client{hub: h, send: make(chan []byte, 4)}
}

func TestHubRegisterUnregisterTracksCount(t *testing.T) {
	h := NewHub()
	assert.Equal(t, 0, h.ClientCount())

	c := fakeClient(h)
	h.Register(c)
	assert.Equal(t, 1, h.ClientCount())

	h.Unregister(c)
	assert.Equal(t, 0, h.ClientCount())
}

func TestHubBroadcastDeliversToRegisteredClients(t *testing.T) {
	h := NewHub()
	c := fakeClient(h)
	h.Register(c)

	h.Broadcast([]byte("hello"))

	select {
	case msg := <-c.send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("expected broadcast message on client channel")
	}
}

func TestHubBroadcastDropsWhenClientBufferFull(t *testing.T) {
	h := NewHub()
	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)

	h.Broadcast([]byte("first"))
	// Buffer is now full; this one must be dropped, not block.
	done := make(chan struct{})
	go func() {
		h.Broadcast([]byte("second"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a full client buffer")
	}
	assert.Equal(t, 1, len(c.send))
}

func TestSolveProgressFuncBroadcastsStageEvent(t *testing.T) {
	h := NewHub()
	c := fakeClient(h)
	h.Register(c)

	fn := SolveProgressFunc(h, "scenario-123")
	fn(2, 7)

	select {
	case msg := <-c.send:
		var ev StageEvent
		require.NoError(t, json.Unmarshal(msg, &ev))
		assert.Equal(t, "solve:stage", ev.Type)
		assert.Equal(t, "scenario-123", ev.ScenarioID)
		assert.Equal(t, 2, ev.StationIndex)
		assert.Equal(t, 7, ev.FrontierSize)
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast stage event")
	}
}
