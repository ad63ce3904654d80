package websocket

import (
	"encoding/json"
	"sync"

	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Event is the envelope pushed to every connected client.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ProgressPayload reports wireframe generation progress, e.g.
// "Generating wireframes... (2/5)".
type ProgressPayload struct {
	Message string `json:"message"`
}

type StagePayload struct {
	Stage entity.Stage `json:"stage"`
	Error string       `json:"error,omitempty"`
}

// Hub fans generation progress out to connected browsers. The planner
// serves a single session, so every client sees the same stream and
// there is no per-user routing.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.ID})
			}
			h.mu.Unlock()
		}
	}
}

// Progress broadcasts a human-readable progress line.
func (h *Hub) Progress(message string) {
	h.broadcast(Event{Type: "progress", Data: ProgressPayload{Message: message}})
}

// StageChanged broadcasts a workflow stage transition.
func (h *Hub) StageChanged(stage entity.Stage, errMessage string) {
	h.broadcast(Event{Type: "stage", Data: StagePayload{Stage: stage, Error: errMessage}})
}

func (h *Hub) broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("Hub", "Failed to marshal event", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer: drop it rather than stall generation.
			h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"client_id": client.ID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
