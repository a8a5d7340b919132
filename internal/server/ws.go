package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteTimeout = 5 * time.Second
	// wsReadLimit caps one inbound message; a query is a few hundred bytes.
	wsReadLimit = 64 << 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(strings.TrimSpace(r.Host))
		originHost := strings.ToLower(strings.TrimSpace(u.Host))
		return host == originHost
	},
}

// wsReply answers one websocket query: View and Data on success, Error
// otherwise.
type wsReply struct {
	View  string `json:"view,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("server: websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	slog.Info("server: websocket connected", "remote", r.RemoteAddr)
	s.serveConnection(conn)
	slog.Info("server: websocket closed", "remote", r.RemoteAddr)
}

// serveConnection answers queries in order until the peer goes away.
func (s *Server) serveConnection(conn *websocket.Conn) {
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var q query
		if err := json.Unmarshal(msg, &q); err != nil {
			if werr := writeReply(conn, wsReply{Error: "invalid request: " + err.Error()}); werr != nil {
				return
			}
			continue
		}

		reply := wsReply{View: q.View}
		if data, err := s.answer(q); err != nil {
			reply = wsReply{Error: err.Error()}
		} else {
			reply.Data = data
		}
		if err := writeReply(conn, reply); err != nil {
			slog.Warn("server: websocket write failed", "error", err)
			return
		}
	}
}

func writeReply(conn *websocket.Conn, reply wsReply) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(reply)
}
