// services/cart_service.go
package services

import (
	"context"
	"errors"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"
	"marketplace/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItemInput struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpsertItemInput sets one cart line. Quantity is required so an omitted
// field never reads as a removal.
type UpsertItemInput struct {
	Item     string `json:"item" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

type CreateCartInput struct {
	VendorID string          `json:"vendorId" binding:"required"`
	Items    []CartItemInput `json:"items"`
}

type ReplaceCartInput struct {
	Items []CartItemInput `json:"items"`
}

type CartService struct {
	Carts   CartStore
	Buyers  BuyerStore
	Vendors VendorStore
	Menu    MenuStore
}

func NewCartService(st Stores) *CartService {
	return &CartService{Carts: st.Carts, Buyers: st.Buyers, Vendors: st.Vendors, Menu: st.Menu}
}

// Carts only show what can still be ordered.
func (s *CartService) expand() expander {
	return expander{vendors: s.Vendors, menu: s.Menu, skipDeleted: true}
}

// List returns the buyer's active carts with vendor and items expanded.
func (s *CartService) List(ctx context.Context, buyerID primitive.ObjectID) ([]entity.CartDetail, error) {
	b, err := s.Buyers.FindByID(ctx, buyerID)
	if err != nil {
		return nil, notFound(err, "Buyer")
	}
	carts, err := s.Carts.FindByIDs(ctx, b.Carts)
	if err != nil {
		return nil, err
	}
	return s.expand().carts(ctx, carts)
}

func (s *CartService) Get(ctx context.Context, buyerID, cartID primitive.ObjectID) (*entity.CartDetail, error) {
	c, err := s.owned(ctx, buyerID, cartID)
	if err != nil {
		return nil, err
	}
	return s.expand().cart(ctx, c)
}

// Create opens a cart for a vendor the buyer has no active cart with.
func (s *CartService) Create(ctx context.Context, buyerID primitive.ObjectID, in CreateCartInput) (*entity.CartDetail, error) {
	vendorID, err := utils.ParseObjectID("vendorId", in.VendorID)
	if err != nil {
		return nil, err
	}
	v, err := s.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFound(err, "Vendor")
	}

	b, err := s.Buyers.FindByID(ctx, buyerID)
	if err != nil {
		return nil, notFound(err, "Buyer")
	}
	active, err := s.Carts.FindByIDs(ctx, b.Carts)
	if err != nil {
		return nil, err
	}
	for _, c := range active {
		if c.Vendor == vendorID {
			return nil, apperr.AlreadyExists("Cart")
		}
	}

	lines, err := cartLines(v, in.Items)
	if err != nil {
		return nil, err
	}

	// two writes, not atomic: a failure in between leaves an unreferenced cart
	c := &entity.Cart{Vendor: vendorID, Items: lines}
	if err := s.Carts.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := s.Buyers.AddRef(ctx, buyerID, entity.BuyerCarts, c.ID); err != nil {
		return nil, err
	}
	return s.expand().cart(ctx, c)
}

// ReplaceItems swaps the whole item list, with the same rules as Create.
func (s *CartService) ReplaceItems(ctx context.Context, buyerID, cartID primitive.ObjectID, in ReplaceCartInput) (*entity.CartDetail, error) {
	c, err := s.owned(ctx, buyerID, cartID)
	if err != nil {
		return nil, err
	}
	v, err := s.Vendors.FindByID(ctx, c.Vendor)
	if err != nil {
		return nil, notFound(err, "Vendor")
	}
	lines, err := cartLines(v, in.Items)
	if err != nil {
		return nil, err
	}
	if err := s.Carts.ReplaceItems(ctx, cartID, lines); err != nil {
		return nil, notFound(err, "Cart")
	}
	c.Items = lines
	return s.expand().cart(ctx, c)
}

// UpsertItem sets one line. Quantity 0 removes it, even when the item has
// since left the vendor's menu. When the cart ends up empty it is destroyed
// and the returned detail is nil.
func (s *CartService) UpsertItem(ctx context.Context, buyerID, cartID primitive.ObjectID, in UpsertItemInput) (*entity.CartDetail, error) {
	if in.Quantity == nil {
		return nil, apperr.MissingField("quantity")
	}
	qty := *in.Quantity
	if qty < 0 {
		return nil, apperr.InvalidField("quantity")
	}
	itemID, err := utils.ParseObjectID("item", in.Item)
	if err != nil {
		return nil, err
	}
	c, err := s.owned(ctx, buyerID, cartID)
	if err != nil {
		return nil, err
	}
	if qty > 0 {
		inMenu, err := s.Vendors.HasRef(ctx, c.Vendor, entity.VendorMenu, itemID)
		if err != nil {
			return nil, err
		}
		if !inMenu {
			return nil, apperr.Unauthorized("Unauthorized item")
		}
	}

	lines, changed := upsertLine(c.Items, itemID, qty)
	if len(lines) == 0 {
		return nil, s.destroy(ctx, buyerID, cartID)
	}
	if changed {
		if err := s.Carts.ReplaceItems(ctx, cartID, lines); err != nil {
			return nil, notFound(err, "Cart")
		}
		c.Items = lines
	}
	return s.expand().cart(ctx, c)
}

func (s *CartService) ToggleSaved(ctx context.Context, buyerID, cartID primitive.ObjectID) (*entity.CartDetail, error) {
	c, err := s.owned(ctx, buyerID, cartID)
	if err != nil {
		return nil, err
	}
	c.SavedForLater = !c.SavedForLater
	if err := s.Carts.SetSaved(ctx, cartID, c.SavedForLater); err != nil {
		return nil, notFound(err, "Cart")
	}
	return s.expand().cart(ctx, c)
}

// Empty deletes one cart.
func (s *CartService) Empty(ctx context.Context, buyerID, cartID primitive.ObjectID) error {
	ok, err := s.Buyers.HasRef(ctx, buyerID, entity.BuyerCarts, cartID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Unauthorized("")
	}
	return s.destroy(ctx, buyerID, cartID)
}

// EmptyAll deletes every active cart of the buyer.
func (s *CartService) EmptyAll(ctx context.Context, buyerID primitive.ObjectID) error {
	b, err := s.Buyers.FindByID(ctx, buyerID)
	if err != nil {
		return notFound(err, "Buyer")
	}
	if err := s.Carts.DeleteMany(ctx, b.Carts); err != nil {
		return err
	}
	return s.Buyers.ClearRefs(ctx, buyerID, entity.BuyerCarts)
}

func (s *CartService) destroy(ctx context.Context, buyerID, cartID primitive.ObjectID) error {
	if err := ignoreMissing(s.Carts.Delete(ctx, cartID)); err != nil {
		return err
	}
	return s.Buyers.RemoveRef(ctx, buyerID, entity.BuyerCarts, cartID)
}

// owned loads a cart only if it is in the buyer's cart list. Missing and
// foreign carts both yield 401.
func (s *CartService) owned(ctx context.Context, buyerID, cartID primitive.ObjectID) (*entity.Cart, error) {
	ok, err := s.Buyers.HasRef(ctx, buyerID, entity.BuyerCarts, cartID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthorized("")
	}
	c, err := s.Carts.FindByID(ctx, cartID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Unauthorized("")
	}
	return c, err
}

// cartLines validates requested items against the vendor's menu.
func cartLines(v *entity.Vendor, items []CartItemInput) ([]entity.CartLine, error) {
	if len(items) == 0 {
		return nil, apperr.MissingField("items")
	}
	menu := make(map[primitive.ObjectID]bool, len(v.Menu))
	for _, id := range v.Menu {
		menu[id] = true
	}

	seen := make(map[primitive.ObjectID]bool, len(items))
	lines := make([]entity.CartLine, 0, len(items))
	for _, it := range items {
		id, err := utils.ParseObjectID("item", it.Item)
		if err != nil {
			return nil, err
		}
		if !menu[id] {
			return nil, apperr.Unauthorized("Unauthorized item")
		}
		if seen[id] {
			return nil, apperr.Forbidden("Duplicate items")
		}
		seen[id] = true
		if it.Quantity <= 0 {
			return nil, apperr.InvalidField("quantity")
		}
		lines = append(lines, entity.CartLine{Item: id, Quantity: it.Quantity})
	}
	return lines, nil
}

// upsertLine applies one quantity change and reports whether anything changed.
func upsertLine(lines []entity.CartLine, item primitive.ObjectID, qty int) ([]entity.CartLine, bool) {
	out := make([]entity.CartLine, 0, len(lines)+1)
	found := false
	for _, l := range lines {
		if l.Item != item {
			out = append(out, l)
			continue
		}
		found = true
		if qty > 0 {
			out = append(out, entity.CartLine{Item: item, Quantity: qty})
		}
	}
	switch {
	case !found && qty > 0:
		return append(out, entity.CartLine{Item: item, Quantity: qty}), true
	case !found:
		return out, false
	}
	return out, true
}
