package controllers

import (
	"marketplace/entity"
	"marketplace/pkg/resp"
	"marketplace/pkg/session"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idParam parses a path id, failing the request on a malformed value.
func idParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := utils.ParseObjectID(name, c.Param(name))
	if err != nil {
		resp.Fail(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// bind decodes the JSON body into dst, failing the request on error.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.Fail(c, utils.BindError(err))
		return false
	}
	return true
}

func sessionData(u *entity.User) *session.Data {
	d := &session.Data{UserID: u.ID}
	if u.Buyer != nil {
		d.BuyerID = *u.Buyer
	}
	if u.Vendor != nil {
		d.VendorID = *u.Vendor
	}
	return d
}

// refreshSession rewrites the current session after a profile was added.
func refreshSession(c *gin.Context, sessions *session.Manager, mutate func(*session.Data)) error {
	cur := utils.CurrentSession(c)
	if cur == nil {
		return nil
	}
	d := *cur
	mutate(&d)
	sid := utils.CurrentSessionID(c)
	if err := sessions.Save(c.Request.Context(), sid, &d); err != nil {
		return err
	}
	utils.SetSession(c, sid, &d)
	return nil
}
