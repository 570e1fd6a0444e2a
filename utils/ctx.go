package utils

import (
	"marketplace/pkg/session"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	sessionKey   = "session"
	sessionIDKey = "sessionId"
)

// SetSession stores the loaded session on the request context.
func SetSession(c *gin.Context, sid string, d *session.Data) {
	c.Set(sessionIDKey, sid)
	c.Set(sessionKey, d)
}

// CurrentSession returns the caller's session data, nil when anonymous.
func CurrentSession(c *gin.Context) *session.Data {
	if v, ok := c.Get(sessionKey); ok {
		if d, ok := v.(*session.Data); ok {
			return d
		}
	}
	return nil
}

func CurrentSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

func CurrentUserID(c *gin.Context) primitive.ObjectID {
	if d := CurrentSession(c); d != nil {
		return d.UserID
	}
	return primitive.NilObjectID
}

func CurrentBuyerID(c *gin.Context) primitive.ObjectID {
	if d := CurrentSession(c); d != nil {
		return d.BuyerID
	}
	return primitive.NilObjectID
}

func CurrentVendorID(c *gin.Context) primitive.ObjectID {
	if d := CurrentSession(c); d != nil {
		return d.VendorID
	}
	return primitive.NilObjectID
}
