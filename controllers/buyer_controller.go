package controllers

import (
	"marketplace/pkg/resp"
	"marketplace/pkg/session"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BuyerController struct {
	Buyers   *services.BuyerService
	Sessions *session.Manager
}

func NewBuyerController(buyers *services.BuyerService, sessions *session.Manager) *BuyerController {
	return &BuyerController{Buyers: buyers, Sessions: sessions}
}

// GET /api/buyers
func (ctl *BuyerController) Get(c *gin.Context) {
	b, err := ctl.Buyers.Get(c.Request.Context(), utils.CurrentBuyerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, b)
}

// POST /api/buyers
func (ctl *BuyerController) Create(c *gin.Context) {
	var in services.BuyerInput
	if !bind(c, &in) {
		return
	}
	b, err := ctl.Buyers.Create(c.Request.Context(), utils.CurrentUserID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	err = refreshSession(c, ctl.Sessions, func(d *session.Data) { d.BuyerID = b.ID })
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, b)
}

// PATCH /api/buyers
func (ctl *BuyerController) Update(c *gin.Context) {
	var in services.BuyerPatchInput
	if !bind(c, &in) {
		return
	}
	b, err := ctl.Buyers.Update(c.Request.Context(), utils.CurrentBuyerID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, b)
}

// GET /api/buyers/savedVendors
func (ctl *BuyerController) SavedVendors(c *gin.Context) {
	vendors, err := ctl.Buyers.SavedVendors(c.Request.Context(), utils.CurrentBuyerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, vendors)
}

// PATCH /api/buyers/savedVendor
func (ctl *BuyerController) ToggleSavedVendor(c *gin.Context) {
	var in services.SavedVendorInput
	if !bind(c, &in) {
		return
	}
	vendorID, _ := primitive.ObjectIDFromHex(in.VendorID) // checked by the objectid tag
	b, err := ctl.Buyers.ToggleSavedVendor(c.Request.Context(), utils.CurrentBuyerID(c), vendorID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, b)
}
