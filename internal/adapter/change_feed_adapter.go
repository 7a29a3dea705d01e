package adapter

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/metrics"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"
)

const changeFeedChannel = "table_changes"

type changeNotification struct {
	Table string `json:"table"`
	Op    string `json:"op"`
}

// ChangeFeedAdapter fans postgres NOTIFY events out to per-topic callbacks.
// Callbacks carry no payload; subscribers re-fetch to learn what changed.
type ChangeFeedAdapter struct {
	listener *pq.Listener

	mu     sync.RWMutex
	subs   map[string]map[uint64]func()
	nextID uint64
}

func NewChangeFeedAdapter(cfg *config.AppConfig) (*ChangeFeedAdapter, error) {
	feed := NewChangeFeed()

	listener := pq.NewListener(cfg.DBConnectionString(), 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Warn("Change feed listener event", "event", ev, "error", err)
		}
	})
	if err := listener.Listen(changeFeedChannel); err != nil {
		listener.Close()
		return nil, err
	}

	feed.listener = listener
	return feed, nil
}

// NewChangeFeed returns a feed without a database listener; events come from Publish only.
func NewChangeFeed() *ChangeFeedAdapter {
	return &ChangeFeedAdapter{
		subs: make(map[string]map[uint64]func()),
	}
}

func (c *ChangeFeedAdapter) Run(ctx context.Context) {
	if c.listener == nil {
		<-ctx.Done()
		return
	}

	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-c.listener.Notify:
			if n == nil {
				// reconnected; anything may have changed in between
				slog.Info("Change feed reconnected, notifying all topics")
				c.publishAll()
				continue
			}
			var payload changeNotification
			if err := json.Unmarshal([]byte(n.Extra), &payload); err != nil {
				slog.Warn("Invalid change feed payload", "payload", n.Extra, "error", err)
				continue
			}
			c.Publish(payload.Table)
		case <-ping.C:
			if err := c.listener.Ping(); err != nil {
				slog.Warn("Change feed ping failed", "error", err)
			}
		}
	}
}

func (c *ChangeFeedAdapter) Subscribe(topic string, callback func()) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	if c.subs[topic] == nil {
		c.subs[topic] = make(map[uint64]func())
	}
	c.subs[topic][id] = callback
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs[topic], id)
			if len(c.subs[topic]) == 0 {
				delete(c.subs, topic)
			}
			c.mu.Unlock()
		})
	}
}

func (c *ChangeFeedAdapter) Publish(topic string) {
	metrics.ChangeFeedEvents.WithLabelValues(topic).Inc()

	c.mu.RLock()
	callbacks := make([]func(), 0, len(c.subs[topic]))
	for _, cb := range c.subs[topic] {
		callbacks = append(callbacks, cb)
	}
	c.mu.RUnlock()

	for _, cb := range callbacks {
		cb()
	}
}

func (c *ChangeFeedAdapter) publishAll() {
	c.mu.RLock()
	topics := make([]string, 0, len(c.subs))
	for topic := range c.subs {
		topics = append(topics, topic)
	}
	c.mu.RUnlock()

	for _, topic := range topics {
		c.Publish(topic)
	}
}

func (c *ChangeFeedAdapter) Subscribers(topic string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs[topic])
}

func (c *ChangeFeedAdapter) Close() error {
	if c.listener == nil {
		return nil
	}
	return c.listener.Close()
}
