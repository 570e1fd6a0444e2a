package controllers

import (
	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GET /api/carts
func (ctl *CartController) List(c *gin.Context) {
	carts, err := ctl.Carts.List(c.Request.Context(), utils.CurrentBuyerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, carts)
}

// GET /api/carts/cart/:cartId
func (ctl *CartController) Get(c *gin.Context) {
	id, ok := idParam(c, "cartId")
	if !ok {
		return
	}
	cart, err := ctl.Carts.Get(c.Request.Context(), utils.CurrentBuyerID(c), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/carts/cart
func (ctl *CartController) Create(c *gin.Context) {
	var in services.CreateCartInput
	if !bind(c, &in) {
		return
	}
	cart, err := ctl.Carts.Create(c.Request.Context(), utils.CurrentBuyerID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, cart)
}

// PUT /api/carts/cart/:cartId
func (ctl *CartController) ReplaceItems(c *gin.Context) {
	id, ok := idParam(c, "cartId")
	if !ok {
		return
	}
	var in services.ReplaceCartInput
	if !bind(c, &in) {
		return
	}
	cart, err := ctl.Carts.ReplaceItems(c.Request.Context(), utils.CurrentBuyerID(c), id, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// PATCH /api/carts/cart/:cartId/item
func (ctl *CartController) UpsertItem(c *gin.Context) {
	id, ok := idParam(c, "cartId")
	if !ok {
		return
	}
	var in services.UpsertItemInput
	if !bind(c, &in) {
		return
	}
	cart, err := ctl.Carts.UpsertItem(c.Request.Context(), utils.CurrentBuyerID(c), id, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if cart == nil {
		resp.NoContent(c)
		return
	}
	resp.OK(c, cart)
}

// PATCH /api/carts/cart/:cartId/saved
func (ctl *CartController) ToggleSaved(c *gin.Context) {
	id, ok := idParam(c, "cartId")
	if !ok {
		return
	}
	cart, err := ctl.Carts.ToggleSaved(c.Request.Context(), utils.CurrentBuyerID(c), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/carts/cart/:cartId
func (ctl *CartController) Empty(c *gin.Context) {
	id, ok := idParam(c, "cartId")
	if !ok {
		return
	}
	if err := ctl.Carts.Empty(c.Request.Context(), utils.CurrentBuyerID(c), id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "Cart emptied")
}

// DELETE /api/carts
func (ctl *CartController) EmptyAll(c *gin.Context) {
	if err := ctl.Carts.EmptyAll(c.Request.Context(), utils.CurrentBuyerID(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "All carts emptied")
}
