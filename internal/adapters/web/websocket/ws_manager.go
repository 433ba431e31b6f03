package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/GeoTuxMan/MyGeoLocation/internal/core/domain"
	"github.com/GeoTuxMan/MyGeoLocation/internal/core/ports"
	"github.com/GeoTuxMan/MyGeoLocation/internal/telemetry"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     originAllowed,
}

// originAllowed accepts same-origin requests (no Origin header, or an Origin
// whose host matches the Host the client connected to). The listen address is
// configurable, so the check derives from the request instead of a fixed
// allowlist.
func originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		slog.Warn("websocket origin unparseable", "origin", origin)
		return false
	}
	if u.Host == r.Host {
		return true
	}

	slog.Warn("websocket origin rejected", "origin", origin, "host", r.Host)
	return false
}

// WSMessage is the envelope pushed to presentation clients.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSManager streams screen snapshots to connected presentation clients.
// It implements ports.ScreenObserver so every committed state mutation is
// pushed immediately; a periodic sweep re-sends the current snapshot so
// late joiners and droppy clients converge.
type WSManager struct {
	Service ports.ScreenService
	Clients map[*websocket.Conn]string
	mu      sync.Mutex
}

// NewWSManager creates a manager around the screen service.
func NewWSManager(service ports.ScreenService) *WSManager {
	return &WSManager{
		Service: service,
		Clients: make(map[*websocket.Conn]string),
	}
}

// Start launches the periodic snapshot sweep.
func (m *WSManager) Start(ctx context.Context) {
	go m.sweep(ctx)
}

// HandleWebSocket upgrades the connection and registers the client.
func (m *WSManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	clientID := uuid.NewString()

	m.mu.Lock()
	m.Clients[conn] = clientID
	m.mu.Unlock()
	telemetry.WSClients.Inc()

	slog.Info("presentation client connected", "client_id", clientID)

	// Send the current state right away so the client can render.
	m.send(conn, WSMessage{Type: "screen", Payload: m.Service.Snapshot()})

	go func() {
		defer conn.Close()
		defer func() {
			m.mu.Lock()
			delete(m.Clients, conn)
			m.mu.Unlock()
			telemetry.WSClients.Dec()
			slog.Info("presentation client disconnected", "client_id", clientID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

// OnScreenUpdated implements ports.ScreenObserver.
func (m *WSManager) OnScreenUpdated(ctx context.Context, snapshot domain.ScreenSnapshot) {
	m.broadcast(WSMessage{Type: "screen", Payload: snapshot})
	if snapshot.Notice != "" {
		m.broadcast(WSMessage{Type: "notice", Payload: map[string]string{
			"message": snapshot.Notice,
		}})
	}
}

func (m *WSManager) sweep(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.broadcast(WSMessage{Type: "screen", Payload: m.Service.Snapshot()})
		}
	}
}

func (m *WSManager) broadcast(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal failed", "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.Clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(m.Clients, conn)
			telemetry.WSClients.Dec()
		}
	}
}

func (m *WSManager) send(conn *websocket.Conn, msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		conn.Close()
		delete(m.Clients, conn)
		telemetry.WSClients.Dec()
	}
}
