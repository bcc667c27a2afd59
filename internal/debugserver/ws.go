// internal/debugserver/ws.go
package debugserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pingInterval = 10 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
)

// handleWS streams every published snapshot to the client as a JSON text frame.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("websocket upgrade: %v", err)
		return
	}
	done := make(chan struct{})
	go s.readPump(conn, done)
	s.writePump(conn, done)
}

// readPump только ловит закрытие и pong; входящие сообщения игнорируются.
func (s *Server) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warnf("websocket closed: %v", err)
			}
			return
		}
	}
}

func (s *Server) writePump(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	var sent uint64
	for {
		changed := s.store.Changed()
		// Текущий снимок уходит сразу, дальше только новые версии
		if v := s.store.Version(); v != sent {
			if snap, ok := s.store.Latest(); ok {
				data, err := json.Marshal(snap)
				if err != nil {
					s.logger.Errorf("marshal snapshot: %v", err)
					return
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			}
			sent = v
		}

		select {
		case <-changed:
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
