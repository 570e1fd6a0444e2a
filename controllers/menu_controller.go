package controllers

import (
	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /api/menus/:vendorId
func (ctl *MenuController) ListByVendor(c *gin.Context) {
	vendorID, ok := idParam(c, "vendorId")
	if !ok {
		return
	}
	items, err := ctl.Menu.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menus/item/:menuItemId
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := idParam(c, "menuItemId")
	if !ok {
		return
	}
	m, err := ctl.Menu.Get(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/menus/item
func (ctl *MenuController) Create(c *gin.Context) {
	var in services.MenuItemInput
	if !bind(c, &in) {
		return
	}
	m, err := ctl.Menu.Create(c.Request.Context(), utils.CurrentVendorID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /api/menus/item/:menuItemId
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c, "menuItemId")
	if !ok {
		return
	}
	var in services.MenuItemInput
	if !bind(c, &in) {
		return
	}
	m, err := ctl.Menu.Update(c.Request.Context(), utils.CurrentVendorID(c), id, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, m)
}

// PATCH /api/menus/item/:menuItemId/availability
func (ctl *MenuController) ToggleAvailability(c *gin.Context) {
	id, ok := idParam(c, "menuItemId")
	if !ok {
		return
	}
	m, err := ctl.Menu.ToggleAvailability(c.Request.Context(), utils.CurrentVendorID(c), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menus/item/:menuItemId
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c, "menuItemId")
	if !ok {
		return
	}
	if err := ctl.Menu.Delete(c.Request.Context(), utils.CurrentVendorID(c), id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "Menu item deleted")
}
