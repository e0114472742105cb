package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBuffer is how many events a slow spectator may fall behind before
	// it is disconnected
	sendBuffer = 32
)

// subscriber is one spectator connection
type subscriber struct {
	roomID string
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.send)
	})
}

// Hub fans room events out to spectators, keyed by room id
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*subscriber]struct{}
	logger *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rooms:  make(map[string]map[*subscriber]struct{}),
		logger: logger,
	}
}

// Notify broadcasts the event as JSON to every subscriber of its room
func (h *Hub) Notify(ctx context.Context, event *models.Event) {
	if event == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode room event",
			zap.String("room_id", event.RoomID),
			zap.String("kind", string(event.Kind)),
			zap.Error(err))
		return
	}

	h.broadcast(event.RoomID, payload)
}

func (h *Hub) broadcast(roomID string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.rooms[roomID] {
		select {
		case sub.send <- payload:
		default:
			h.logger.Warn("dropping slow spectator", zap.String("room_id", roomID))
			h.removeLocked(sub)
		}
	}
}

// Subscribers returns how many spectators watch a room
func (h *Hub) Subscribers(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// subscribe registers a connection with an optional first message queued
// ahead of any broadcast
func (h *Hub) subscribe(roomID string, conn *websocket.Conn, first []byte) *subscriber {
	sub := &subscriber{
		roomID: roomID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
	if first != nil {
		sub.send <- first
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.rooms[roomID]
	if !ok {
		subs = make(map[*subscriber]struct{})
		h.rooms[roomID] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *subscriber) {
	subs, ok := h.rooms[sub.roomID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.rooms, sub.roomID)
	}
	sub.close()
}

// Close disconnects every spectator
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, subs := range h.rooms {
		for sub := range subs {
			sub.close()
		}
	}
	h.rooms = make(map[string]map[*subscriber]struct{})
}

// writePump delivers queued events and keeps the connection alive. It owns
// all writes to the connection.
func (h *Hub) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sub.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Debug("spectator write failed", zap.String("room_id", sub.roomID), zap.Error(err))
				h.unsubscribe(sub)
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unsubscribe(sub)
				return
			}
		}
	}
}

// readPump discards client messages and detects disconnects. Spectators are
// read-only.
func (h *Hub) readPump(sub *subscriber) {
	defer h.unsubscribe(sub)

	sub.conn.SetReadLimit(512)
	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
