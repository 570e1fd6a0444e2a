// controllers/order_controller.go
package controllers

import (
	"marketplace/entity"
	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ---------------- Buyer ----------------

// GET /api/orders/buyer
func (ctl *OrderController) ListForBuyer(c *gin.Context) {
	orders, err := ctl.Orders.ListForBuyer(c.Request.Context(), utils.CurrentBuyerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/buyer/:orderId
func (ctl *OrderController) GetForBuyer(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	o, err := ctl.Orders.GetForBuyer(c.Request.Context(), utils.CurrentBuyerID(c), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /api/orders/buyer
func (ctl *OrderController) Place(c *gin.Context) {
	var in services.PlaceOrderInput
	if !bind(c, &in) {
		return
	}
	o, err := ctl.Orders.Place(c.Request.Context(), utils.CurrentBuyerID(c), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, o)
}

// PATCH /api/orders/buyer/:orderId/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	if err := ctl.Orders.Cancel(c.Request.Context(), utils.CurrentBuyerID(c), id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "Order cancelled")
}

// ---------------- Vendor ----------------

// GET /api/orders/vendor
func (ctl *OrderController) ListForVendor(c *gin.Context) {
	orders, err := ctl.Orders.ListForVendor(c.Request.Context(), utils.CurrentVendorID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/vendor/pending
func (ctl *OrderController) ListPending(c *gin.Context) {
	orders, err := ctl.Orders.ListPending(c.Request.Context(), utils.CurrentVendorID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/vendor/:orderId
func (ctl *OrderController) GetForVendor(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	o, err := ctl.Orders.GetForVendor(c.Request.Context(), utils.CurrentVendorID(c), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /api/orders/vendor/:orderId/process
func (ctl *OrderController) Process(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	var in services.ProcessOrderInput
	if !bind(c, &in) {
		return
	}
	o, err := ctl.Orders.Process(c.Request.Context(), utils.CurrentVendorID(c), id, *in.IsAccept)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /api/orders/vendor/:orderId/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	var in services.UpdateStatusInput
	if !bind(c, &in) {
		return
	}
	o, err := ctl.Orders.UpdateStatus(c.Request.Context(), utils.CurrentVendorID(c), id, entity.OrderStatus(*in.Status))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, o)
}
