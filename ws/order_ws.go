// ws/order_ws.go
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace/entity"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	queueSize  = 256
	clientBuf  = 16
)

// OrderHub pushes order events to the buyer and vendor rooms they concern.
// One goroutine (Run) owns the room map; everything else talks to it over channels.
type OrderHub struct {
	rooms      map[primitive.ObjectID]map[*client]bool // profile id -> connections
	broadcast  chan entity.OrderEvent
	register   chan *client
	unregister chan *client
	done       chan struct{}
	upgrader   websocket.Upgrader
	log        *slog.Logger
}

type client struct {
	room primitive.ObjectID
	conn *websocket.Conn
	send chan []byte
}

// NewOrderHub accepts upgrades from allowedOrigin, or from any origin when it is empty.
func NewOrderHub(logger *slog.Logger, allowedOrigin string) *OrderHub {
	return &OrderHub{
		rooms:      make(map[primitive.ObjectID]map[*client]bool),
		broadcast:  make(chan entity.OrderEvent, queueSize),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Run serves register/unregister/broadcast until ctx is done, then closes all connections.
func (h *OrderHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for _, room := range h.rooms {
				for cl := range room {
					close(cl.send)
				}
			}
			h.rooms = map[primitive.ObjectID]map[*client]bool{}
			return

		case cl := <-h.register:
			if h.rooms[cl.room] == nil {
				h.rooms[cl.room] = make(map[*client]bool)
			}
			h.rooms[cl.room][cl] = true

		case cl := <-h.unregister:
			if _, ok := h.rooms[cl.room][cl]; ok {
				h.drop(cl)
			}

		case ev := <-h.broadcast:
			msg, err := json.Marshal(ev)
			if err != nil {
				h.log.Error("ws encode event", slog.Any("error", err))
				continue
			}
			for cl := range h.rooms[recipient(ev)] {
				select {
				case cl.send <- msg:
				default:
					// slow reader
					h.drop(cl)
				}
			}
		}
	}
}

// Publish queues ev without blocking. Events are dropped when the queue is full.
func (h *OrderHub) Publish(ev entity.OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("ws queue full, dropping order event",
			slog.String("type", string(ev.Type)),
			slog.String("order_id", ev.OrderID.Hex()))
	}
}

// GET /api/orders/vendor/ws
func (h *OrderHub) HandleVendor(c *gin.Context) {
	h.serve(c, utils.CurrentVendorID(c))
}

// GET /api/orders/buyer/ws
func (h *OrderHub) HandleBuyer(c *gin.Context) {
	h.serve(c, utils.CurrentBuyerID(c))
}

func (h *OrderHub) serve(c *gin.Context, room primitive.ObjectID) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade", slog.Any("error", err))
		return
	}
	cl := &client{room: room, conn: conn, send: make(chan []byte, clientBuf)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *OrderHub) drop(cl *client) {
	delete(h.rooms[cl.room], cl)
	if len(h.rooms[cl.room]) == 0 {
		delete(h.rooms, cl.room)
	}
	close(cl.send)
}

// readPump only watches for the peer going away; clients never send anything we use.
func (h *OrderHub) readPump(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
	}()

	cl.conn.SetReadLimit(512)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *OrderHub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.log.Warn("ws write", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// recipient picks the room an event is for: buyer actions notify the vendor and vice versa.
func recipient(ev entity.OrderEvent) primitive.ObjectID {
	switch ev.Type {
	case entity.EventOrderPlaced, entity.EventOrderCancelled:
		return ev.VendorID
	}
	return ev.BuyerID
}
