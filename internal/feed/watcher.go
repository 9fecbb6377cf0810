package feed

import (
	"time"

	"github.com/gorilla/websocket"
)

// Watcher is one websocket subscriber to a single player's career feed.
type Watcher struct {
	hub      *Hub
	playerID string
	conn     *websocket.Conn
	Receive  chan []byte
}

func newWatcher(hub *Hub, playerID string, conn *websocket.Conn) *Watcher {
	return &Watcher{
		hub:      hub,
		playerID: playerID,
		conn:     conn,
		Receive:  make(chan []byte, 8),
	}
}

func (w *Watcher) writeUpdates() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		w.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-w.Receive:
			_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub dropped this watcher.
				_ = w.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			writer, err := w.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = writer.Write(msg)

			// Drain queued updates into the same websocket message.
			for i := 0; i < len(w.Receive); i++ {
				_, _ = writer.Write(newline)
				_, _ = writer.Write(<-w.Receive)
			}

			if err := writer.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readUntilClose discards inbound frames. Watchers never send anything
// meaningful, but the read pump is what notices a dropped connection and
// keeps pong handling alive.
func (w *Watcher) readUntilClose() {
	defer func() {
		w.hub.leave <- w
		w.conn.Close()
	}()

	w.conn.SetReadLimit(maxMessageSize)
	_ = w.conn.SetReadDeadline(time.Now().Add(pongWait))
	w.conn.SetPongHandler(func(string) error {
		_ = w.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}
