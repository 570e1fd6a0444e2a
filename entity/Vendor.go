package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vendor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	PriceRange   PriceRange         `bson:"priceRange" json:"priceRange"`
	Phone        string             `bson:"phone" json:"phone"`
	Description  string             `bson:"description" json:"description"`
	CuisineTypes []string           `bson:"cuisineTypes" json:"cuisineTypes"`

	// menu keeps insertion order; orders holds only accepted orders
	Menu   []primitive.ObjectID `bson:"menu" json:"menu"`
	Orders []primitive.ObjectID `bson:"orders" json:"orders"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type VendorList string

const (
	VendorMenu   VendorList = "menu"
	VendorOrders VendorList = "orders"
)

type VendorPatch struct {
	Name        *string
	Address     *string
	PriceRange  *PriceRange
	Phone       *string
	Description *string
}

// HasCuisine reports whether the cuisine type is already listed.
func (v *Vendor) HasCuisine(cuisine string) bool {
	for _, c := range v.CuisineTypes {
		if c == cuisine {
			return true
		}
	}
	return false
}
