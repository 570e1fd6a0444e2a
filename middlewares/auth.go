package middlewares

import (
	"errors"

	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"
	"marketplace/pkg/session"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

const (
	RoleBuyer  = "buyer"
	RoleVendor = "vendor"
)

// SessionLoader attaches the cookie's session, if any, to the request.
// Anonymous requests pass through; AuthMiddleware decides what needs a login.
func SessionLoader(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, d, err := sessions.Load(c)
		switch {
		case errors.Is(err, session.ErrNotFound):
		case err != nil:
			resp.Fail(c, err)
			return
		default:
			utils.SetSession(c, sid, d)
		}
		c.Next()
	}
}

// AuthMiddleware requires a logged-in session and, for each role given,
// the matching profile on it.
func AuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := utils.CurrentSession(c)
		if d == nil || d.UserID.IsZero() {
			resp.Fail(c, apperr.Unauthorized(""))
			return
		}
		for _, role := range requiredRoles {
			switch role {
			case RoleBuyer:
				if d.BuyerID.IsZero() {
					resp.Fail(c, apperr.Unauthorized("Buyer profile required"))
					return
				}
			case RoleVendor:
				if d.VendorID.IsZero() {
					resp.Fail(c, apperr.Unauthorized("Vendor profile required"))
					return
				}
			}
		}
		c.Next()
	}
}
