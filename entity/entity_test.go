package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserValidate(t *testing.T) {
	assert.ErrorIs(t, (&User{}).Validate(), ErrUserIdentity)
	assert.NoError(t, (&User{Email: "a@b.co"}).Validate())
	assert.NoError(t, (&User{GoogleID: "g-1"}).Validate())
}

func TestPriceRangeValid(t *testing.T) {
	for _, p := range []PriceRange{PriceLow, PriceMedium, PriceHigh} {
		assert.True(t, p.Valid(), p)
	}
	for _, p := range []PriceRange{"", "$$$$", "cheap"} {
		assert.False(t, p.Valid(), p)
	}
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusReady.Terminal())
	assert.True(t, StatusReady.Known())
	assert.False(t, OrderStatus(5).Known())
	assert.False(t, OrderStatus(-1).Known())
	assert.Equal(t, "in-progress", StatusInProgress.String())
}

func TestCartQuantity(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	c := Cart{Items: []CartLine{{Item: a, Quantity: 2}}}
	assert.Equal(t, 2, c.Quantity(a))
	assert.Equal(t, 0, c.Quantity(b))
}
