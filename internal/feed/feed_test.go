package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newFeedServer(t *testing.T, hub *Hub, playerID string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Join(playerID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		client.Close()
	})

	// give the server handler time to register the watcher with the hub
	time.Sleep(100 * time.Millisecond)

	return client
}

func TestBroadcastReachesWatcher(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newFeedServer(t, hub, "player-1")

	want := `{"games_played":1}`
	hub.Broadcast("player-1", []byte(want))

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := client.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != want {
		t.Errorf("got: %s; expected: %s", msg, want)
	}
}

func TestBroadcastScopedToPlayer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newFeedServer(t, hub, "player-2")

	hub.Broadcast("someone-else", []byte(`{"games_played":9}`))

	_ = client.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := client.ReadMessage(); err == nil {
		t.Error("received update for a different player")
	}
}
