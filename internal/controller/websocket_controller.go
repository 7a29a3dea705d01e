package controller

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/session"
	"BalaghAPI/internal/websocket"
	"log/slog"
	"net/http"

	ws "github.com/gorilla/websocket"
)

type WebSocketController struct {
	hub       *websocket.Hub
	provider  session.Provider
	dashboard websocket.DashboardWatcher
	upgrader  ws.Upgrader
}

func NewWebSocketController(hub *websocket.Hub, provider session.Provider, dashboard websocket.DashboardWatcher, allowedOrigins []string) *WebSocketController {
	return &WebSocketController{
		hub:       hub,
		provider:  provider,
		dashboard: dashboard,
		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// ServeWS godoc
// @Summary      WebSocket Connection
// @Description  Push channel for auth.state, dashboard.update and upload.status events. Pass the access token as the 'token' query param.
// @Tags         websocket
// @Success      101  {string}  string  "Switching Protocols"
// @Failure      401  {object}  helper.ResponseError
// @Router       /ws [get]
func (c *WebSocketController) ServeWS(w http.ResponseWriter, r *http.Request) {
	client := &websocket.Client{
		Hub:       c.hub,
		Send:      make(chan []byte, 256),
		Token:     r.URL.Query().Get("token"),
		Locale:    helper.LocaleFromContext(r.Context()),
		Provider:  c.provider,
		Dashboard: c.dashboard,
	}
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		client.UserID = sess.User.ID
	}

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket", "error", err)
		return
	}
	client.Conn = conn

	if !client.Hub.Join(client) {
		slog.Warn("Websocket hub stopped, closing connection")
		conn.Close()
		return
	}
	client.Start(r.Context())

	go client.WritePump()
	go client.ReadPump()
}
