// Package memory is an in-process document store with the same behavior as
// the mongo repositories. It backs DB_DRIVER=memory and the service tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DB holds every collection behind one lock.
type DB struct {
	mu      sync.RWMutex
	users   map[primitive.ObjectID]entity.User
	buyers  map[primitive.ObjectID]entity.Buyer
	vendors map[primitive.ObjectID]entity.Vendor
	menu    map[primitive.ObjectID]entity.MenuItem
	carts   map[primitive.ObjectID]entity.Cart
	orders  map[primitive.ObjectID]entity.Order

	now func() time.Time
}

func New() *DB {
	return &DB{
		users:   map[primitive.ObjectID]entity.User{},
		buyers:  map[primitive.ObjectID]entity.Buyer{},
		vendors: map[primitive.ObjectID]entity.Vendor{},
		menu:    map[primitive.ObjectID]entity.MenuItem{},
		carts:   map[primitive.ObjectID]entity.Cart{},
		orders:  map[primitive.ObjectID]entity.Order{},
		now:     time.Now,
	}
}

func (db *DB) Users() *UserRepository     { return &UserRepository{db} }
func (db *DB) Buyers() *BuyerRepository   { return &BuyerRepository{db} }
func (db *DB) Vendors() *VendorRepository { return &VendorRepository{db} }
func (db *DB) Menu() *MenuRepository      { return &MenuRepository{db} }
func (db *DB) Carts() *CartRepository     { return &CartRepository{db} }
func (db *DB) Orders() *OrderRepository   { return &OrderRepository{db} }

func ids(in []primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, len(in))
	copy(out, in)
	return out
}

func contains(list []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func addToSet(list []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	if contains(list, id) {
		return list
	}
	return append(ids(list), id)
}

func pull(list []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func newID(id primitive.ObjectID) primitive.ObjectID {
	if id.IsZero() {
		return primitive.NewObjectID()
	}
	return id
}

// pick returns the documents for ids in input order, skipping missing ones.
func pick[T any](m map[primitive.ObjectID]T, want []primitive.ObjectID, clone func(T) T) []T {
	out := make([]T, 0, len(want))
	for _, id := range want {
		if v, ok := m[id]; ok {
			out = append(out, clone(v))
		}
	}
	return out
}

func cloneUser(u entity.User) entity.User {
	if u.Buyer != nil {
		b := *u.Buyer
		u.Buyer = &b
	}
	if u.Vendor != nil {
		v := *u.Vendor
		u.Vendor = &v
	}
	return u
}

func cloneBuyer(b entity.Buyer) entity.Buyer {
	b.SavedVendors = ids(b.SavedVendors)
	b.Carts = ids(b.Carts)
	b.Orders = ids(b.Orders)
	return b
}

func cloneVendor(v entity.Vendor) entity.Vendor {
	v.CuisineTypes = append([]string{}, v.CuisineTypes...)
	v.Menu = ids(v.Menu)
	v.Orders = ids(v.Orders)
	return v
}

func cloneMenuItem(m entity.MenuItem) entity.MenuItem {
	if m.ExpireAt != nil {
		t := *m.ExpireAt
		m.ExpireAt = &t
	}
	return m
}

func cloneCart(c entity.Cart) entity.Cart {
	c.Items = append([]entity.CartLine{}, c.Items...)
	return c
}

func cloneOrder(o entity.Order) entity.Order { return o }

func sortNewestFirst(orders []entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
}
