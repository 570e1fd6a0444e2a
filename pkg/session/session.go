// Package session keeps server-side login sessions keyed by a signed cookie.
package session

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("session not found")

// Data is what a session remembers about the caller.
type Data struct {
	UserID   primitive.ObjectID `json:"userId"`
	BuyerID  primitive.ObjectID `json:"buyerId"`
	VendorID primitive.ObjectID `json:"vendorId"`
}

type Store interface {
	Get(ctx context.Context, id string) (*Data, error)
	Save(ctx context.Context, id string, d *Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
