package services

import (
	"context"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// expander joins carts with their vendor and menu items. With skipDeleted
// set, soft-deleted items are left out as well as purged ones.
type expander struct {
	vendors     VendorStore
	menu        MenuStore
	skipDeleted bool
}

func (x expander) cart(ctx context.Context, c *entity.Cart) (*entity.CartDetail, error) {
	out, err := x.carts(ctx, []entity.Cart{*c})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// carts expands in two queries regardless of how many carts there are.
// Lines whose menu item has been purged are left out.
func (x expander) carts(ctx context.Context, carts []entity.Cart) ([]entity.CartDetail, error) {
	var vendorIDs, itemIDs []primitive.ObjectID
	for _, c := range carts {
		vendorIDs = append(vendorIDs, c.Vendor)
		for _, l := range c.Items {
			itemIDs = append(itemIDs, l.Item)
		}
	}

	vendors, err := x.vendors.FindByIDs(ctx, vendorIDs)
	if err != nil {
		return nil, err
	}
	items, err := x.menu.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	vendorByID := make(map[primitive.ObjectID]*entity.Vendor, len(vendors))
	for i := range vendors {
		vendorByID[vendors[i].ID] = &vendors[i]
	}
	itemByID := make(map[primitive.ObjectID]entity.MenuItem, len(items))
	for _, m := range items {
		if x.skipDeleted && m.Deleted() {
			continue
		}
		itemByID[m.ID] = m
	}

	out := make([]entity.CartDetail, 0, len(carts))
	for _, c := range carts {
		d := entity.CartDetail{
			ID:            c.ID,
			Vendor:        vendorByID[c.Vendor],
			Items:         make([]entity.CartLineDetail, 0, len(c.Items)),
			SavedForLater: c.SavedForLater,
			CreatedAt:     c.CreatedAt,
			UpdatedAt:     c.UpdatedAt,
		}
		for _, l := range c.Items {
			if m, ok := itemByID[l.Item]; ok {
				d.Items = append(d.Items, entity.CartLineDetail{Item: m, Quantity: l.Quantity})
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// orders attaches the originating cart to each order.
func (x expander) orders(ctx context.Context, carts CartStore, orders []entity.Order) ([]entity.OrderDetail, error) {
	cartIDs := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		cartIDs = append(cartIDs, o.Cart)
	}
	found, err := carts.FindByIDs(ctx, cartIDs)
	if err != nil {
		return nil, err
	}
	details, err := x.carts(ctx, found)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*entity.CartDetail, len(details))
	for i := range details {
		byID[details[i].ID] = &details[i]
	}

	out := make([]entity.OrderDetail, 0, len(orders))
	for _, o := range orders {
		out = append(out, entity.OrderDetail{Order: o, CartDetail: byID[o.Cart]})
	}
	return out, nil
}
