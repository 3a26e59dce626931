package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is the broadcast envelope. Every mutation publishes exactly one
// event; deletes carry only the id in the payload.
type Event struct {
	ID      string `json:"id"`
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

const clientBufferSize = 64

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts every published event to every connected client. There is
// no per-client filtering, ordering guarantee, buffering, or ack: clients
// disconnected during a mutation miss that event and reconcile on the next
// full list fetch.
type Hub struct {
	mu         sync.Mutex
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			log.Printf("ws client connected (%d total)", h.ClientCount())
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow consumer, cut it loose
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		close(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish is fire-and-forget: it returns once the event is queued and never
// blocks a mutation handler on delivery.
func (h *Hub) Publish(event string, payload any) {
	msg, err := json.Marshal(Event{
		ID:      uuid.NewString(),
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		log.Printf("ws marshal failed for %s: %v", event, err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("ws broadcast queue full, dropping %s", event)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and joins it to the broadcast group. The
// endpoint is deliberately outside the auth middleware; visibility is a
// client-side concern in this deployment.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBufferSize)}
	h.register <- c

	go c.writePump()
	go func() {
		defer func() {
			h.unregister <- c
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
