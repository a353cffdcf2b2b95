package observability

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/logging"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans per-tick snapshots out to websocket clients. Publish never
// blocks the tick loop: a slow client only ever sees the newest snapshot.
type Hub struct {
	logger logging.Logger

	mu      sync.Mutex
	latest  *entity.Snapshot
	clients map[chan entity.Snapshot]struct{}
}

func NewHub(logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Noop()
	}
	return &Hub{
		logger:  logger,
		clients: make(map[chan entity.Snapshot]struct{}),
	}
}

// Observe implements app.Observer.
func (h *Hub) Observe(snap entity.Snapshot) {
	h.Publish(snap)
}

// Publish stores snap as the latest snapshot and offers it to every client.
func (h *Hub) Publish(snap entity.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = &snap
	for ch := range h.clients {
		select {
		case ch <- snap:
		default:
			// drop the stale frame and keep the newest
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

// Latest returns the most recent snapshot, if any tick has run.
func (h *Hub) Latest() (entity.Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.latest == nil {
		return entity.Snapshot{}, false
	}
	return *h.latest, true
}

// Clients returns the number of connected websocket clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) subscribe() chan entity.Snapshot {
	ch := make(chan entity.Snapshot, 1)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	if h.latest != nil {
		ch <- *h.latest
	}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan entity.Snapshot) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

// ServeWS upgrades the request and streams snapshots as JSON text frames
// until the client goes away. Anything the client sends is ignored.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), "websocket upgrade failed", logging.Err(err))
		return
	}
	defer conn.Close()

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.logger.Debug(ctx, "telemetry client connected", logging.String("remote", r.RemoteAddr))
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug(context.WithoutCancel(ctx), "telemetry client disconnected", logging.String("remote", r.RemoteAddr))
			return
		case snap := <-ch:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		}
	}
}
