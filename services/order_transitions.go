// services/order_transitions.go
package services

import (
	"context"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errNotPending    = apperr.Forbidden("Order is not pending")
	errOrderClosed   = apperr.Forbidden("Order is already closed")
	errStatusChanged = apperr.Forbidden("Order status changed")
)

// ----- Buyer actions -----

// Cancel deletes a pending order together with its cart. The status guard
// claims the order first so a concurrent accept cannot be lost.
func (s *OrderService) Cancel(ctx context.Context, buyerID, orderID primitive.ObjectID) error {
	o, err := s.ownedByBuyer(ctx, buyerID, orderID)
	if err != nil {
		return err
	}
	if o.Status != entity.StatusPending {
		return errNotPending
	}
	ok, err := s.Orders.UpdateStatusGuard(ctx, o.ID, entity.StatusPending, entity.StatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		return errStatusChanged
	}

	if err := s.Buyers.RemoveRef(ctx, buyerID, entity.BuyerOrders, o.ID); err != nil {
		return err
	}
	if err := ignoreMissing(s.Orders.Delete(ctx, o.ID)); err != nil {
		return err
	}
	if err := ignoreMissing(s.Carts.Delete(ctx, o.Cart)); err != nil {
		return err
	}

	o.Status = entity.StatusCancelled
	s.publish(entity.EventOrderCancelled, o)
	return nil
}

// ----- Vendor actions -----

// Process accepts or rejects a pending order. The owning vendor is resolved
// through the order's cart.
func (s *OrderService) Process(ctx context.Context, vendorID, orderID primitive.ObjectID, accept bool) (*entity.Order, error) {
	o, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	c, err := s.Carts.FindByID(ctx, o.Cart)
	if err != nil {
		return nil, notFound(err, "Cart")
	}
	if c.Vendor != vendorID {
		return nil, apperr.Unauthorized("")
	}
	if o.Status != entity.StatusPending {
		return nil, errNotPending
	}

	to, event := entity.StatusCancelled, entity.EventOrderRejected
	if accept {
		to, event = entity.StatusInProgress, entity.EventOrderAccepted
	}
	ok, err := s.Orders.UpdateStatusGuard(ctx, o.ID, entity.StatusPending, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errStatusChanged
	}
	if accept {
		if err := s.Vendors.AddRef(ctx, vendorID, entity.VendorOrders, o.ID); err != nil {
			return nil, err
		}
	}

	o.Status = to
	o.UpdatedAt = s.Now()
	s.publish(event, o)
	return o, nil
}

// UpdateStatus advances an accepted order. A code not greater than the
// current one is always 422. Completed and cancelled orders refuse further
// changes (403). Codes above 4 are also rejected with 422: that is a stricter
// rule than the unvalidated field it replaces, not part of the ordering check.
// Stages may be skipped.
func (s *OrderService) UpdateStatus(ctx context.Context, vendorID, orderID primitive.ObjectID, status entity.OrderStatus) (*entity.Order, error) {
	o, err := s.ownedByVendor(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	if status <= o.Status {
		return nil, apperr.InvalidField("status")
	}
	if o.Status.Terminal() {
		return nil, errOrderClosed
	}
	if !status.Known() {
		return nil, apperr.InvalidField("status")
	}

	ok, err := s.Orders.UpdateStatusGuard(ctx, o.ID, o.Status, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errStatusChanged
	}

	o.Status = status
	o.UpdatedAt = s.Now()
	s.publish(entity.EventOrderStatus, o)
	return o, nil
}
