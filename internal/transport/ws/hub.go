package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub manages WebSocket connections, one per interview session. A fresh
// connection for a session replaces the previous one, which covers the
// reconnect-after-drop case.
type Hub struct {
	conns map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	send       chan *sessionMessage
}

// Connection represents one client's WebSocket connection
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

type sessionMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		send:       make(chan *sessionMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if existing, ok := h.conns[conn.SessionID]; ok && existing != conn {
				close(existing.Send)
				log.Printf("Session %s reconnected, replacing old connection", conn.SessionID)
			}
			h.conns[conn.SessionID] = conn
			log.Printf("Session %s connected via WebSocket", conn.SessionID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.SessionID]; ok && existing == conn {
				delete(h.conns, conn.SessionID)
				close(conn.Send)
				log.Printf("Session %s disconnected", conn.SessionID)
			}
			h.mu.Unlock()

		case msg := <-h.send:
			h.mu.RLock()
			if conn, ok := h.conns[msg.SessionID]; ok {
				data, _ := json.Marshal(msg.Message)
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// SendToSession delivers an event to the session's client if it is connected.
func (h *Hub) SendToSession(sessionID string, msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s payload for session %s: %v", msgType, sessionID, err)
		return
	}
	h.send <- &sessionMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}
