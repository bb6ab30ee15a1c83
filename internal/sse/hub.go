package sse

import (
	"encoding/json"
	"sync"

	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// portalEntities are the collections portal clients are allowed to observe.
// Everything else stays admin-only.
var portalEntities = map[string]bool{
	store.EntityProject:  true,
	store.EntityVersion:  true,
	store.EntityComment:  true,
	store.EntityApproval: true,
	store.EntityExport:   true,
}

type Client struct {
	ID   string
	Role string
	Send chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(event)
			for _, client := range h.clients {
				if !visibleTo(client, event) {
					continue
				}
				select {
				case client.Send <- data:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

func visibleTo(client *Client, event Event) bool {
	if client.Role == "admin" {
		return true
	}
	change, ok := event.Data.(ChangeEvent)
	if !ok {
		return false
	}
	return portalEntities[change.Entity]
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastChange fans a store mutation out to every connected stream. Wire
// it up with store.Subscribe at startup.
func (h *Hub) BroadcastChange(ch store.Change) {
	h.broadcast <- Event{
		Type: "store_changed",
		Data: ChangeEvent{
			Entity: ch.Entity,
			Action: ch.Action,
			ID:     ch.ID,
		},
	}
}
