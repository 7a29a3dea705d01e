package websocket

import (
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/upload"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatcher struct {
	mu       sync.Mutex
	onUpdate func(*model.DashboardData, error)
	stopped  int
}

func (f *fakeWatcher) Watch(ctx context.Context, userID string, onUpdate func(*model.DashboardData, error)) func() {
	f.mu.Lock()
	f.onUpdate = onUpdate
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.stopped++
		f.mu.Unlock()
	}
}

func (f *fakeWatcher) emit(data *model.DashboardData) bool {
	f.mu.Lock()
	cb := f.onUpdate
	f.mu.Unlock()
	if cb == nil {
		return false
	}
	cb(data, nil)
	return true
}

func (f *fakeWatcher) stopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub()
	go hub.Run(ctx)
	return hub
}

func dial(t *testing.T, hub *Hub, userID string, watcher DashboardWatcher) *ws.Conn {
	t.Helper()
	upgrader := ws.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &Client{
			Hub:       hub,
			Conn:      conn,
			Send:      make(chan []byte, 16),
			UserID:    userID,
			Locale:    "en",
			Dashboard: watcher,
		}
		if !hub.Join(client) {
			conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(server.Close)

	conn, _, err := ws.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount(userID) > 0 }, time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *ws.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var event map[string]any
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHubUploadStatusReachesOwnerOnly(t *testing.T) {
	hub := startHub(t)
	owner := dial(t, hub, "u1", nil)
	dial(t, hub, "u2", nil)

	statuses := make(chan upload.Status, 1)
	go hub.ForwardUploads(context.Background(), statuses)
	statuses <- upload.Status{OwnerID: "u1", FileID: "f1", Index: 1, Total: 2}

	event := readEvent(t, owner)
	assert.Equal(t, string(EventUploadStatus), event["type"])
	assert.Equal(t, 1, hub.ClientCount("u2"))
	close(statuses)
}

func TestClientDashboardSubscription(t *testing.T) {
	hub := startHub(t)
	watcher := &fakeWatcher{}
	conn := dial(t, hub, "u1", watcher)

	require.NoError(t, conn.WriteJSON(Command{Type: CommandDashboardSubscribe}))
	require.Eventually(t, func() bool {
		return watcher.emit(&model.DashboardData{Stats: model.DashboardStats{TotalReports: 4}})
	}, time.Second, 10*time.Millisecond)

	event := readEvent(t, conn)
	assert.Equal(t, string(EventDashboardUpdate), event["type"])

	require.NoError(t, conn.WriteJSON(Command{Type: CommandDashboardUnsubscribe}))
	require.Eventually(t, func() bool { return watcher.stopCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestClientDisconnectReleasesDashboard(t *testing.T) {
	hub := startHub(t)
	watcher := &fakeWatcher{}
	conn := dial(t, hub, "u1", watcher)

	require.NoError(t, conn.WriteJSON(Command{Type: CommandDashboardSubscribe}))
	require.Eventually(t, func() bool { return watcher.emit(&model.DashboardData{}) }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return watcher.stopCount() == 1 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return hub.ClientCount("u1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	conn := dial(t, hub, "u1", nil)
	cancel()

	select {
	case <-hub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
	assert.Equal(t, 0, hub.ClientCount("u1"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	joined := make(chan bool, 1)
	go func() { joined <- hub.Join(&Client{Hub: hub, UserID: "late", Send: make(chan []byte, 1)}) }()
	select {
	case ok := <-joined:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("join blocked after shutdown")
	}

	left := make(chan struct{})
	go func() {
		hub.Leave(&Client{Hub: hub})
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(2 * time.Second):
		t.Fatal("leave blocked after shutdown")
	}
}
