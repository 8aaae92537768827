package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The UI is served from the same origin; allow all for local use.
		return true
	},
}

type ProgressEvent struct {
	JobID    string `json:"jobId"`
	Progress int    `json:"progress,omitempty"`
	Status   string `json:"status,omitempty"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans job progress events out to websocket subscribers. One-way only:
// clients never send anything meaningful, their read side just detects close.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[entities.JobID]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[entities.JobID]map[*subscriber]struct{}),
	}
}

func (h *Hub) NotifyProgress(jobID entities.JobID, percent int) {
	h.publish(jobID, ProgressEvent{JobID: string(jobID), Progress: percent})
}

func (h *Hub) NotifyDone(jobID entities.JobID, status entities.JobStatus) {
	h.publish(jobID, ProgressEvent{JobID: string(jobID), Progress: 100, Status: string(status)})
}

func (h *Hub) publish(jobID entities.JobID, event ProgressEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal progress event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[jobID] {
		select {
		case sub.send <- payload:
		default:
			// Slow consumer; drop the event rather than block generation.
		}
	}
}

// HandleJobSocket upgrades the connection and streams progress for one job.
func (h *Hub) HandleJobSocket(w http.ResponseWriter, r *http.Request) {
	jobID := entities.JobID(mux.Vars(r)["id"])
	if jobID == "" {
		http.Error(w, "missing job id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.register(jobID, sub)

	go sub.writePump()
	go func() {
		defer func() {
			h.unregister(jobID, sub)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket error: %v", err)
				}
				return
			}
		}
	}()
}

func (h *Hub) register(jobID entities.JobID, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[jobID] == nil {
		h.subscribers[jobID] = make(map[*subscriber]struct{})
	}
	h.subscribers[jobID][sub] = struct{}{}
}

func (h *Hub) unregister(jobID entities.JobID, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.subscribers[jobID]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub)
			close(sub.send)
		}
		if len(subs) == 0 {
			delete(h.subscribers, jobID)
		}
	}
}

func (s *subscriber) writePump() {
	for message := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	s.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
