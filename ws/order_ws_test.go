package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/entity"
	"marketplace/pkg/session"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderHubDeliversToVendorRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewOrderHub(slog.New(slog.NewTextHandler(io.Discard, nil)), "")
	go hub.Run(ctx)

	vendorID := primitive.NewObjectID()
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		utils.SetSession(c, "sid", &session.Data{UserID: primitive.NewObjectID(), VendorID: vendorID})
	}, hub.HandleVendor)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	orderID := primitive.NewObjectID()
	ev := entity.OrderEvent{Type: entity.EventOrderPlaced, OrderID: orderID, VendorID: vendorID, At: time.Now()}

	// registration races the dial; keep publishing until the first event lands
	received := make(chan []byte, 1)
	go func() {
		_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err == nil {
			received <- msg
		}
		close(received)
	}()

	var got entity.OrderEvent
	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(3 * time.Second)
wait:
	for {
		select {
		case msg, ok := <-received:
			require.True(t, ok, "connection closed before an event arrived")
			require.NoError(t, json.Unmarshal(msg, &got))
			break wait
		case <-tick.C:
			hub.Publish(ev)
		case <-timeout:
			t.Fatal("no event received")
		}
	}
	assert.Equal(t, entity.EventOrderPlaced, got.Type)
	assert.Equal(t, orderID, got.OrderID)
}

func TestRecipient(t *testing.T) {
	buyer, vendor := primitive.NewObjectID(), primitive.NewObjectID()
	ev := entity.OrderEvent{BuyerID: buyer, VendorID: vendor}

	ev.Type = entity.EventOrderPlaced
	assert.Equal(t, vendor, recipient(ev))
	ev.Type = entity.EventOrderCancelled
	assert.Equal(t, vendor, recipient(ev))
	ev.Type = entity.EventOrderAccepted
	assert.Equal(t, buyer, recipient(ev))
	ev.Type = entity.EventOrderStatus
	assert.Equal(t, buyer, recipient(ev))
}

func TestPublishDoesNotBlockWithoutRun(t *testing.T) {
	hub := NewOrderHub(slog.New(slog.NewTextHandler(io.Discard, nil)), "")
	for i := 0; i < queueSize+10; i++ {
		hub.Publish(entity.OrderEvent{Type: entity.EventOrderStatus})
	}
}
