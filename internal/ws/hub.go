// Package ws streams feed-ingested trades to websocket subscribers.
package ws

import (
	"tradedesk/internal/model"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type client struct {
	conn *websocket.Conn
	send chan model.Trade
}

// Hub fans newly stored trades out to connected clients. Slow clients
// are dropped rather than allowed to block the feed.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan model.Trade
	logger     *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan model.Trade, 64),
		logger:     logger,
	}
}

// Run owns the client set. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Infof("ws client connected (%d total)", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case trade := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- trade:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast queues a trade for delivery to every connected client.
// It never blocks the caller; the oldest update is dropped under load.
func (h *Hub) Broadcast(trade model.Trade) {
	select {
	case h.broadcast <- trade:
	default:
	}
}
