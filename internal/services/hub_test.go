package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *DraftHub, draftID string, lastSeen time.Time) *WSClient {
	return &WSClient{
		DraftID:  draftID,
		Send:     make(chan []byte, 4),
		Hub:      h,
		LastSeen: lastSeen,
	}
}

func (h *DraftHub) hasClient(client *WSClient) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.clients[client]
}

func TestStaleSweepKeepsHubResponsive(t *testing.T) {
	h := NewDraftHub(testLogger())
	go h.Run()

	stale := newTestClient(h, "d1", time.Now().Add(-3*time.Minute))
	h.register <- stale
	require.Eventually(t, func() bool { return h.hasClient(stale) },
		time.Second, 5*time.Millisecond)

	h.pingClients()
	assert.False(t, h.hasClient(stale))

	// The event loop must still accept registrations after a sweep.
	fresh := newTestClient(h, "d1", time.Now())
	select {
	case h.register <- fresh:
	case <-time.After(time.Second):
		t.Fatal("hub stopped accepting registrations after the stale sweep")
	}
	require.Eventually(t, func() bool { return h.hasClient(fresh) },
		time.Second, 5*time.Millisecond)

	h.Publish("d1", DraftEvent{Type: "pick", DraftID: "d1", Timestamp: time.Now().Unix()})
	select {
	case data := <-fresh.Send:
		assert.Contains(t, string(data), `"type":"pick"`)
	case <-time.After(time.Second):
		t.Fatal("broadcast did not reach the remaining client")
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := NewDraftHub(testLogger())
	client := newTestClient(h, "d2", time.Now())

	h.registerClient(client)
	h.unregisterClient(client)

	_, open := <-client.Send
	assert.False(t, open)
	assert.False(t, h.hasClient(client))

	// A second unregister of the same client is a no-op.
	h.unregisterClient(client)
}
