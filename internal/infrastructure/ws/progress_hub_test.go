package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/alexdo83/Generate-videos-with-Veo-3/internal/domain/entities"
)

func dialHub(t *testing.T, hub *Hub, jobID string) *websocket.Conn {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/ws/jobs/{id}", hub.HandleJobSocket)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/jobs/" + jobID

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) ProgressEvent {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}

	var event ProgressEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("Failed to unmarshal event: %v", err)
	}
	return event
}

func TestHub_ProgressFanout(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "job-1")

	// The subscriber registers during the upgrade handshake, but give the
	// handler goroutine a moment on slow machines.
	waitForSubscriber(t, hub, "job-1")

	hub.NotifyProgress("job-1", 5)
	hub.NotifyProgress("job-1", 10)
	hub.NotifyDone("job-1", entities.JobStatusSucceeded)

	first := readEvent(t, conn)
	if first.Progress != 5 || first.JobID != "job-1" {
		t.Errorf("first event = %+v, want progress 5", first)
	}

	second := readEvent(t, conn)
	if second.Progress != 10 {
		t.Errorf("second event = %+v, want progress 10", second)
	}

	done := readEvent(t, conn)
	if done.Status != string(entities.JobStatusSucceeded) || done.Progress != 100 {
		t.Errorf("done event = %+v, want succeeded at 100", done)
	}
}

func TestHub_EventsScopedToJob(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "job-1")
	waitForSubscriber(t, hub, "job-1")

	hub.NotifyProgress("other-job", 50)
	hub.NotifyProgress("job-1", 25)

	event := readEvent(t, conn)
	if event.JobID != "job-1" || event.Progress != 25 {
		t.Errorf("got event %+v, want job-1 at 25", event)
	}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	// Must not panic or block.
	hub.NotifyProgress("nobody-listening", 50)
	hub.NotifyDone("nobody-listening", entities.JobStatusFailed)
}

func waitForSubscriber(t *testing.T, hub *Hub, jobID entities.JobID) {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		n := len(hub.subscribers[jobID])
		hub.mu.RUnlock()
		if n > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("subscriber never registered")
}
