package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SoftDeleteTTL is how long a deleted menu item lingers before the TTL index purges it.
const SoftDeleteTTL = 30 * 24 * time.Hour

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	IsAvailable bool               `bson:"isAvailable" json:"isAvailable"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ExpireAt    *time.Time         `bson:"expireAt,omitempty" json:"expireAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Deleted reports whether the item was soft-deleted.
func (m *MenuItem) Deleted() bool { return m.ExpireAt != nil }

// MenuItemPatch replaces the editable fields of a menu item.
type MenuItemPatch struct {
	Name        string
	Price       float64
	Category    string
	Description string
	IsAvailable bool
}
