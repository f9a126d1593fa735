package services

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now (should be restricted in production)
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WSClient is one WebSocket subscriber listening to a single draft.
type WSClient struct {
	DraftID  string
	Conn     *websocket.Conn
	Send     chan []byte
	Hub      *DraftHub
	LastSeen time.Time
}

// DraftHub fans out draft events to WebSocket subscribers grouped by
// draft ID. It implements EventPublisher.
type DraftHub struct {
	clients      map[*WSClient]bool
	draftClients map[string][]*WSClient
	broadcast    chan DraftEvent
	register     chan *WSClient
	unregister   chan *WSClient
	logger       *logrus.Logger
	mutex        sync.RWMutex
}

func NewDraftHub(logger *logrus.Logger) *DraftHub {
	return &DraftHub{
		clients:      make(map[*WSClient]bool),
		draftClients: make(map[string][]*WSClient),
		broadcast:    make(chan DraftEvent, 256),
		register:     make(chan *WSClient),
		unregister:   make(chan *WSClient),
		logger:       logger,
	}
}

// Publish queues an event for fan-out. Non-blocking: if the hub's queue
// is full the event is dropped rather than stalling the draft.
func (h *DraftHub) Publish(draftID string, event DraftEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.WithField("draft_id", draftID).Warn("Event queue full, dropping draft event")
	}
}

// Run starts the hub and handles client registration/unregistration
func (h *DraftHub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)

		case <-ticker.C:
			h.pingClients()
		}
	}
}

func (h *DraftHub) registerClient(client *WSClient) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.draftClients[client.DraftID] = append(h.draftClients[client.DraftID], client)

	h.logger.WithFields(logrus.Fields{
		"draft_id":      client.DraftID,
		"total_clients": len(h.clients),
	}).Info("Draft WebSocket client connected")
}

func (h *DraftHub) unregisterClient(client *WSClient) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	clients := h.draftClients[client.DraftID]
	for i, c := range clients {
		if c == client {
			h.draftClients[client.DraftID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.draftClients[client.DraftID]) == 0 {
		delete(h.draftClients, client.DraftID)
	}

	h.logger.WithFields(logrus.Fields{
		"draft_id":      client.DraftID,
		"total_clients": len(h.clients),
	}).Info("Draft WebSocket client disconnected")
}

func (h *DraftHub) broadcastEvent(event DraftEvent) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal WebSocket message")
		return
	}

	for _, client := range h.draftClients[event.DraftID] {
		h.sendToClient(client, data)
	}
}

func (h *DraftHub) sendToClient(client *WSClient, data []byte) {
	select {
	case client.Send <- data:
		client.LastSeen = time.Now()
	default:
		// Client's send channel is full, close the connection
		go func() { h.unregister <- client }()
	}
}

func (h *DraftHub) pingClients() {
	h.mutex.RLock()
	staleClients := []*WSClient{}
	now := time.Now()
	for client := range h.clients {
		if now.Sub(client.LastSeen) > 2*time.Minute {
			staleClients = append(staleClients, client)
		}
	}
	h.mutex.RUnlock()

	// Run calls this between channel reads, so going through the
	// unregister channel here would block the loop on itself.
	for _, client := range staleClients {
		h.unregisterClient(client)
	}

	if len(staleClients) > 0 {
		h.logger.WithField("stale_clients", len(staleClients)).Debug("Removed stale WebSocket clients")
	}
}

// HandleWebSocket upgrades the connection and subscribes it to a draft.
func (h *DraftHub) HandleWebSocket(c *gin.Context) {
	draftID := c.Param("id")
	if draftID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Draft ID is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}

	client := &WSClient{
		DraftID:  draftID,
		Conn:     conn,
		Send:     make(chan []byte, 64),
		Hub:      h,
		LastSeen: time.Now(),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *WSClient) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *WSClient) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(2 * time.Minute))
	c.Conn.SetPongHandler(func(string) error {
		c.LastSeen = time.Now()
		c.Conn.SetReadDeadline(time.Now().Add(2 * time.Minute))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
