package websocket

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/session"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

type DashboardWatcher interface {
	Watch(ctx context.Context, userID string, onUpdate func(*model.DashboardData, error)) func()
}

// Client is one socket. It owns a long-lived session.Context that pushes
// auth.state events, and at most one dashboard subscription.
type Client struct {
	Hub    *Hub
	Conn   *ws.Conn
	Send   chan []byte
	UserID string
	Token  string
	Locale string

	Provider  session.Provider
	Dashboard DashboardWatcher

	mu            sync.Mutex
	auth          *session.Context
	stopDashboard func()
	closed        bool

	// dropped is guarded by Hub.mu and set once Send is closed.
	dropped bool
}

// Start wires the auth context before any pump runs, so the first auth.state
// reaches the client.
func (c *Client) Start(ctx context.Context) {
	if c.Provider == nil {
		return
	}
	c.auth = session.NewContext(c.Provider, c.Locale)
	c.auth.Subscribe(func(state session.State) {
		c.push(Event{Type: EventAuthState, Payload: state})
	})
	c.auth.Init(ctx, c.Token)
}

func (c *Client) ReadPump() {
	defer func() {
		c.release()
		c.Hub.Leave(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseGoingAway, ws.CloseAbnormalClosure) {
				slog.Warn("Websocket closed unexpectedly", "error", err, "userID", c.UserID)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.push(Event{Type: EventError, Payload: ErrorPayload{Message: helper.MsgBadRequest}})
			continue
		}
		c.handle(cmd)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(ws.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(ws.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(ws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(cmd Command) {
	switch cmd.Type {
	case CommandDashboardSubscribe:
		c.subscribeDashboard()
	case CommandDashboardUnsubscribe:
		c.unsubscribeDashboard()
	default:
		c.push(Event{Type: EventError, Payload: ErrorPayload{Message: helper.MsgBadRequest}})
	}
}

func (c *Client) subscribeDashboard() {
	if c.Dashboard == nil {
		return
	}
	if c.UserID == "" {
		c.push(Event{Type: EventError, Payload: ErrorPayload{
			Message: helper.Message(c.Locale, constant.MsgLoginRequired),
			Kind:    string(helper.KindAuth),
		}})
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.stopDashboard != nil {
		return
	}

	ctx := helper.WithLocale(context.Background(), c.Locale)
	c.stopDashboard = c.Dashboard.Watch(ctx, c.UserID, func(data *model.DashboardData, err error) {
		if err != nil {
			payload := ErrorPayload{Message: err.Error(), Retryable: true}
			if appErr, ok := helper.AsAppError(err); ok {
				payload.Kind = string(appErr.Kind)
				payload.Retryable = appErr.Retryable
			}
			c.push(Event{Type: EventDashboardError, Payload: payload})
			return
		}
		c.push(Event{Type: EventDashboardUpdate, Payload: data})
	})
}

func (c *Client) unsubscribeDashboard() {
	c.mu.Lock()
	stop := c.stopDashboard
	c.stopDashboard = nil
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// release tears down every subscription the socket holds.
func (c *Client) release() {
	c.unsubscribeDashboard()

	c.mu.Lock()
	c.closed = true
	auth := c.auth
	c.mu.Unlock()

	if auth != nil {
		auth.Close()
	}
}

// push queues an event for this socket only. It goes through the hub lock so
// it never races the hub closing Send.
func (c *Client) push(event Event) {
	data, err := encode(event)
	if err != nil {
		slog.Error("Failed to marshal event", "error", err)
		return
	}

	c.Hub.mu.RLock()
	defer c.Hub.mu.RUnlock()
	if c.dropped {
		return
	}
	select {
	case c.Send <- data:
	default:
		slog.Warn("Dropping websocket event for slow client", "type", event.Type, "userID", c.UserID)
	}
}
