// controllers/vendor_controller.go
package controllers

import (
	"marketplace/pkg/resp"
	"marketplace/pkg/session"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Vendors  *services.VendorService
	Sessions *session.Manager
}

func NewVendorController(vendors *services.VendorService, sessions *session.Manager) *VendorController {
	return &VendorController{Vendors: vendors, Sessions: sessions}
}

// GET /api/vendors
func (ctl *VendorController) Get(c *gin.Context) {
	v, err := ctl.Vendors.Get(c.Request.Context(), utils.CurrentVendorID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, v)
}

// GET /api/vendors/all
func (ctl *VendorController) List(c *gin.Context) {
	vendors, err := ctl.Vendors.List(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, vendors)
}

// GET /api/vendors/:vendorId
func (ctl *VendorController) Detail(c *gin.Context) {
	id, ok := idParam(c, "vendorId")
	if !ok {
		return
	}
	v, err := ctl.Vendors.Get(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, v)
}

// POST /api/vendors
func (ctl *VendorController) Create(c *gin.Context) {
	var in services.VendorInput
	if !bind(c, &in) {
		return
	}
	v, err := ctl.Vendors.Create(c.Request.Context(), utils.CurrentUserID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	err = refreshSession(c, ctl.Sessions, func(d *session.Data) { d.VendorID = v.ID })
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, v)
}

// PATCH /api/vendors
func (ctl *VendorController) Update(c *gin.Context) {
	var in services.VendorPatchInput
	if !bind(c, &in) {
		return
	}
	v, err := ctl.Vendors.Update(c.Request.Context(), utils.CurrentVendorID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, v)
}

// PATCH /api/vendors/cuisine
func (ctl *VendorController) ToggleCuisine(c *gin.Context) {
	var in services.CuisineInput
	if !bind(c, &in) {
		return
	}
	v, err := ctl.Vendors.ToggleCuisine(c.Request.Context(), utils.CurrentVendorID(c), in.Cuisine)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, v)
}
