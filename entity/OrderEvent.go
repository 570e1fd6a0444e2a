package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderEventType string

const (
	EventOrderPlaced    OrderEventType = "order.placed"
	EventOrderCancelled OrderEventType = "order.cancelled"
	EventOrderAccepted  OrderEventType = "order.accepted"
	EventOrderRejected  OrderEventType = "order.rejected"
	EventOrderStatus    OrderEventType = "order.status"
)

// OrderEvent is pushed to the buyer or vendor watching an order.
type OrderEvent struct {
	Type    OrderEventType     `json:"type"`
	OrderID primitive.ObjectID `json:"orderId"`
	Status  OrderStatus        `json:"status"`
	At      time.Time          `json:"at"`

	// routing, not serialized
	BuyerID  primitive.ObjectID `json:"-"`
	VendorID primitive.ObjectID `json:"-"`
}
