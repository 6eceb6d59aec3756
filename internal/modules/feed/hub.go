package feed

import (
	"context"
	"sync"
	"time"

	"grandstay/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is one reservation lifecycle change pushed to connected staff
// dashboards.
type Event struct {
	Type          string    `json:"type"`
	Kind          string    `json:"kind"`
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	Status        string    `json:"status,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	At            time.Time `json:"at"`
}

const (
	EventCreated       = "reservation.created"
	EventStatusChanged = "reservation.status_changed"
)

// Hub fans reservation events out to every connected staff socket. It
// implements the lifecycle service's EventSink.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) Broadcast(evt Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(evt); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

func (h *Hub) NotifyReservationCreated(_ context.Context, kind domain.ReservationKind, id, userID int64) error {
	h.Broadcast(Event{
		Type:          EventCreated,
		Kind:          string(kind),
		ReservationID: id,
		UserID:        userID,
		Status:        string(domain.ReservationPending),
		At:            time.Now(),
	})
	return nil
}

func (h *Hub) NotifyStatusChanged(_ context.Context, kind domain.ReservationKind, id, userID int64, status domain.ReservationStatus, reason string) error {
	h.Broadcast(Event{
		Type:          EventStatusChanged,
		Kind:          string(kind),
		ReservationID: id,
		UserID:        userID,
		Status:        string(status),
		Reason:        reason,
		At:            time.Now(),
	})
	return nil
}
