package services

import (
	"context"
	"time"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/utils"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaceOrderInput struct {
	CartID string `json:"cartId" binding:"required,objectid"`
}

type ProcessOrderInput struct {
	IsAccept *bool `json:"isAccept" binding:"required"`
}

type UpdateStatusInput struct {
	Status *int `json:"status" binding:"required"`
}

type OrderService struct {
	Orders   OrderStore
	Carts    CartStore
	Buyers   BuyerStore
	Vendors  VendorStore
	Menu     MenuStore
	Notifier OrderNotifier
	Now      func() time.Time
}

func NewOrderService(st Stores, notifier OrderNotifier) *OrderService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderService{
		Orders:   st.Orders,
		Carts:    st.Carts,
		Buyers:   st.Buyers,
		Vendors:  st.Vendors,
		Menu:     st.Menu,
		Notifier: notifier,
		Now:      time.Now,
	}
}

func (s *OrderService) expand() expander { return expander{vendors: s.Vendors, menu: s.Menu} }

// ----- Buyer side -----

// ListForBuyer returns the buyer's orders, newest first.
func (s *OrderService) ListForBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]entity.OrderDetail, error) {
	b, err := s.Buyers.FindByID(ctx, buyerID)
	if err != nil {
		return nil, notFound(err, "Buyer")
	}
	orders, err := s.Orders.FindByIDs(ctx, b.Orders)
	if err != nil {
		return nil, err
	}
	return s.expand().orders(ctx, s.Carts, orders)
}

func (s *OrderService) GetForBuyer(ctx context.Context, buyerID, orderID primitive.ObjectID) (*entity.OrderDetail, error) {
	o, err := s.ownedByBuyer(ctx, buyerID, orderID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, o)
}

// Place turns a buyer-owned cart into a pending order. The cart document is
// kept as the order's back-reference but leaves the buyer's active carts.
func (s *OrderService) Place(ctx context.Context, buyerID primitive.ObjectID, in PlaceOrderInput) (*entity.OrderDetail, error) {
	cartID, err := utils.ParseObjectID("cartId", in.CartID)
	if err != nil {
		return nil, err
	}
	ok, err := s.Buyers.HasRef(ctx, buyerID, entity.BuyerCarts, cartID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthorized("")
	}
	c, err := s.Carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, notFound(err, "Cart")
	}
	// soft-deleted items are not billed
	live := expander{vendors: s.Vendors, menu: s.Menu, skipDeleted: true}
	detail, err := live.cart(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(detail.Items) == 0 {
		return nil, apperr.Forbidden("Cart has no orderable items")
	}
	if len(detail.Items) != len(c.Items) {
		if err := s.Carts.ReplaceItems(ctx, c.ID, orderedLines(detail.Items)); err != nil {
			return nil, notFound(err, "Cart")
		}
	}

	o := &entity.Order{
		Buyer:      buyerID,
		Vendor:     c.Vendor,
		Cart:       c.ID,
		TotalPrice: TotalPrice(detail.Items),
		Status:     entity.StatusPending,
		CreatedAt:  s.Now(),
	}
	if err := s.Orders.Create(ctx, o); err != nil {
		return nil, err
	}
	if err := s.Buyers.AddRef(ctx, buyerID, entity.BuyerOrders, o.ID); err != nil {
		return nil, err
	}
	if err := s.Buyers.RemoveRef(ctx, buyerID, entity.BuyerCarts, c.ID); err != nil {
		return nil, err
	}

	s.publish(entity.EventOrderPlaced, o)
	return &entity.OrderDetail{Order: *o, CartDetail: detail}, nil
}

// orderedLines is the cart content an order is billed for.
func orderedLines(items []entity.CartLineDetail) []entity.CartLine {
	out := make([]entity.CartLine, 0, len(items))
	for _, l := range items {
		out = append(out, entity.CartLine{Item: l.Item.ID, Quantity: l.Quantity})
	}
	return out
}

// ----- Vendor side -----

// ListForVendor returns the orders the vendor has accepted.
func (s *OrderService) ListForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]entity.OrderDetail, error) {
	v, err := s.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFound(err, "Vendor")
	}
	orders, err := s.Orders.FindByIDs(ctx, v.Orders)
	if err != nil {
		return nil, err
	}
	return s.expand().orders(ctx, s.Carts, orders)
}

// ListPending returns orders waiting for the vendor to accept or reject, oldest first.
func (s *OrderService) ListPending(ctx context.Context, vendorID primitive.ObjectID) ([]entity.OrderDetail, error) {
	orders, err := s.Orders.FindByVendorStatus(ctx, vendorID, entity.StatusPending)
	if err != nil {
		return nil, err
	}
	return s.expand().orders(ctx, s.Carts, orders)
}

func (s *OrderService) GetForVendor(ctx context.Context, vendorID, orderID primitive.ObjectID) (*entity.OrderDetail, error) {
	o, err := s.ownedByVendor(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, o)
}

// ----- helpers -----

// TotalPrice sums price × quantity in decimal and rounds to cents.
func TotalPrice(lines []entity.CartLineDetail) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.Item.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	f, _ := total.Round(2).Float64()
	return f
}

func (s *OrderService) detail(ctx context.Context, o *entity.Order) (*entity.OrderDetail, error) {
	out, err := s.expand().orders(ctx, s.Carts, []entity.Order{*o})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *OrderService) ownedByBuyer(ctx context.Context, buyerID, orderID primitive.ObjectID) (*entity.Order, error) {
	ok, err := s.Buyers.HasRef(ctx, buyerID, entity.BuyerOrders, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthorized("")
	}
	o, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	return o, nil
}

func (s *OrderService) ownedByVendor(ctx context.Context, vendorID, orderID primitive.ObjectID) (*entity.Order, error) {
	ok, err := s.Vendors.HasRef(ctx, vendorID, entity.VendorOrders, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthorized("")
	}
	o, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	return o, nil
}

func (s *OrderService) publish(t entity.OrderEventType, o *entity.Order) {
	s.Notifier.Publish(entity.OrderEvent{
		Type:     t,
		OrderID:  o.ID,
		Status:   o.Status,
		At:       s.Now(),
		BuyerID:  o.Buyer,
		VendorID: o.Vendor,
	})
}
