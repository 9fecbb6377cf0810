package feed

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 1 * time.Minute

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var newline = []byte{'\n'}

// Hub fans recomputed career totals out to websocket watchers. Watchers
// subscribe to a single player; every successful recompute for that player
// is pushed to them as one JSON message.
type Hub struct {
	watchers map[string]map[*Watcher]bool
	join     chan *Watcher
	leave    chan *Watcher
	updates  chan update
}

type update struct {
	playerID string
	msg      []byte
}

func NewHub() *Hub {
	return &Hub{
		watchers: make(map[string]map[*Watcher]bool),
		join:     make(chan *Watcher),
		leave:    make(chan *Watcher),
		updates:  make(chan update),
	}
}

// Run owns the watcher registry. It must be running before any Join or
// Broadcast call.
func (h *Hub) Run() {
	for {
		select {
		case watcher := <-h.join:
			if h.watchers[watcher.playerID] == nil {
				h.watchers[watcher.playerID] = make(map[*Watcher]bool)
			}
			h.watchers[watcher.playerID][watcher] = true
		case watcher := <-h.leave:
			if _, ok := h.watchers[watcher.playerID][watcher]; ok {
				delete(h.watchers[watcher.playerID], watcher)
				close(watcher.Receive)
			}
		case u := <-h.updates:
			for watcher := range h.watchers[u.playerID] {
				select {
				case watcher.Receive <- u.msg:
				default:
					delete(h.watchers[u.playerID], watcher)
					close(watcher.Receive)
				}
			}
		}
	}
}

// Join registers conn as a watcher of playerID and starts its read and write
// pumps. The connection belongs to the hub from here on.
func (h *Hub) Join(playerID string, conn *websocket.Conn) *Watcher {
	watcher := newWatcher(h, playerID, conn)
	h.join <- watcher

	go watcher.writeUpdates()
	go watcher.readUntilClose()

	return watcher
}

// Broadcast pushes msg to every watcher of playerID. A watcher that cannot
// keep up is dropped rather than allowed to stall the rest.
func (h *Hub) Broadcast(playerID string, msg []byte) {
	h.updates <- update{playerID: playerID, msg: msg}
}
