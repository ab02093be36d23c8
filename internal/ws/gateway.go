package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// Hub fans status events out to every socket watching a session.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{}
	log   *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{conns: make(map[string]map[*websocket.Conn]struct{}), log: log}
}

// Handler upgrades GET /ws/searches/{session}. Incoming frames are read and
// discarded so close frames are noticed.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := chi.URLParam(r, "session")
		if session == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			h.log.Debug("websocket accept failed", zap.Error(err))
			return
		}

		h.add(session, conn)
		defer h.remove(session, conn)

		ctx := r.Context()
		for {
			var v any
			if err := wsjson.Read(ctx, conn, &v); err != nil {
				return
			}
		}
	}
}

func (h *Hub) Broadcast(sessionID string, event any) {
	for _, conn := range h.snapshot(sessionID) {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := wsjson.Write(ctx, conn, event)
		cancel()
		if err != nil {
			h.log.Debug("dropping websocket", zap.String("session", sessionID), zap.Error(err))
			go func(c *websocket.Conn) {
				c.Close(websocket.StatusGoingAway, "write error")
				h.remove(sessionID, c)
			}(conn)
		}
	}
}

// Subscribers returns how many sockets watch sessionID.
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[sessionID])
}

func (h *Hub) snapshot(sessionID string) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*websocket.Conn, 0, len(h.conns[sessionID]))
	for conn := range h.conns[sessionID] {
		out = append(out, conn)
	}
	return out
}

func (h *Hub) add(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[sessionID]
	if !ok {
		set = make(map[*websocket.Conn]struct{})
		h.conns[sessionID] = set
	}
	set[conn] = struct{}{}
}

func (h *Hub) remove(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[sessionID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.conns, sessionID)
	}
}
