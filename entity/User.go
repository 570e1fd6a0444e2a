package entity

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserIdentity = errors.New("user needs an email or an oauth id")

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	GoogleID string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash

	// at most one profile of each kind
	Buyer  *primitive.ObjectID `bson:"buyer,omitempty" json:"buyer,omitempty"`
	Vendor *primitive.ObjectID `bson:"vendor,omitempty" json:"vendor,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Validate checks the identification invariant.
func (u *User) Validate() error {
	if u.Email == "" && u.GoogleID == "" {
		return ErrUserIdentity
	}
	return nil
}
