package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

// Client is one open connection watching a Q&A thread.
type Client struct {
	QAID string
	Conn *websocket.Conn
}

type outbound struct {
	qaID    string
	message *models.QuestionAnswerMessage
}

// Hub fans Q&A messages out to every connection subscribed to the
// thread. Rooms are keyed by the thread's public id.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]map[*websocket.Conn]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
}

func NewHub() *Hub {
	h := &Hub{
		rooms:      make(map[string]map[*websocket.Conn]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 64),
	}
	go h.run()
	return h
}

func (h *Hub) Register(client *Client)   { h.register <- client }
func (h *Hub) Unregister(client *Client) { h.unregister <- client }

// Broadcast implements the push hook the Q&A flow calls after storing
// a message.
func (h *Hub) Broadcast(qaID string, message *models.QuestionAnswerMessage) {
	h.broadcast <- outbound{qaID: qaID, message: message}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.QAID]
			if !ok {
				room = make(map[*websocket.Conn]struct{})
				h.rooms[client.QAID] = room
			}
			room[client.Conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("Client joined Q&A room %s", client.QAID)
		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.QAID]; ok {
				delete(room, client.Conn)
				if len(room) == 0 {
					delete(h.rooms, client.QAID)
				}
			}
			h.mu.Unlock()
			log.Printf("Client left Q&A room %s", client.QAID)
		case out := <-h.broadcast:
			h.mu.RLock()
			var dead []*websocket.Conn
			for conn := range h.rooms[out.qaID] {
				if err := conn.WriteJSON(out.message); err != nil {
					log.Printf("Error sending message to Q&A room %s: %v", out.qaID, err)
					conn.Close()
					dead = append(dead, conn)
				}
			}
			h.mu.RUnlock()
			if len(dead) > 0 {
				h.mu.Lock()
				for _, conn := range dead {
					delete(h.rooms[out.qaID], conn)
				}
				h.mu.Unlock()
			}
		}
	}
}
