package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Buyer struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address" json:"address"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`

	SavedVendors []primitive.ObjectID `bson:"savedVendors" json:"savedVendors"`
	Carts        []primitive.ObjectID `bson:"carts" json:"carts"`
	Orders       []primitive.ObjectID `bson:"orders" json:"orders"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BuyerList names one of the reference arrays on a buyer document.
type BuyerList string

const (
	BuyerSavedVendors BuyerList = "savedVendors"
	BuyerCarts        BuyerList = "carts"
	BuyerOrders       BuyerList = "orders"
)

// BuyerPatch holds the editable profile fields; nil means unchanged.
type BuyerPatch struct {
	Name    *string
	Address *string
	Phone   *string
}
