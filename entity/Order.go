package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Buyer  primitive.ObjectID `bson:"buyer" json:"buyer"`
	Vendor primitive.ObjectID `bson:"vendor" json:"vendor"` // listing only, ownership goes through Cart
	Cart   primitive.ObjectID `bson:"cart" json:"cart"`

	TotalPrice float64     `bson:"totalPrice" json:"totalPrice"`
	Status     OrderStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OrderDetail is an order with its originating cart expanded.
type OrderDetail struct {
	Order
	CartDetail *CartDetail `json:"cartDetail,omitempty"`
}
