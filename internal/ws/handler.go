package ws

import (
	"net/http"
	"time"

	"tradedesk/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// HandleTrades upgrades GET /ws/trades and streams trades as JSON until
// the client goes away.
func (h *Handler) HandleTrades(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.logger.Warnf("ws upgrade failed: %v", err)
		return
	}

	cl := &client{
		conn: conn,
		send: make(chan model.Trade, 16),
	}
	h.hub.register <- cl

	go cl.writePump()
	cl.readPump(h.hub)
}

func (cl *client) writePump() {
	defer cl.conn.Close()
	for trade := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := cl.conn.WriteJSON(trade); err != nil {
			return
		}
	}
}

// readPump discards client frames; it exists to detect disconnects.
func (cl *client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- cl
		cl.conn.Close()
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
