package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is a buyer's selection from a single vendor. Items behaves as a map
// keyed by menu item: no repeated item and no zero quantity.
type Cart struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Vendor        primitive.ObjectID `bson:"vendor" json:"vendor"`
	Items         []CartLine         `bson:"items" json:"items"`
	SavedForLater bool               `bson:"savedForLater" json:"savedForLater"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CartLine struct {
	Item     primitive.ObjectID `bson:"item" json:"item"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Quantity returns the quantity of item, 0 when absent.
func (c *Cart) Quantity(item primitive.ObjectID) int {
	for _, l := range c.Items {
		if l.Item == item {
			return l.Quantity
		}
	}
	return 0
}

// CartDetail is a cart with its vendor and menu items expanded.
type CartDetail struct {
	ID            primitive.ObjectID `json:"id"`
	Vendor        *Vendor            `json:"vendor"`
	Items         []CartLineDetail   `json:"items"`
	SavedForLater bool               `json:"savedForLater"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type CartLineDetail struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}
