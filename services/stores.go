package services

import (
	"context"
	"errors"
	"time"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store contracts. repository (mongo) and repository/memory both satisfy them.

type UserStore interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SetBuyer(ctx context.Context, userID, buyerID primitive.ObjectID) error
	SetVendor(ctx context.Context, userID, vendorID primitive.ObjectID) error
}

type BuyerStore interface {
	Create(ctx context.Context, b *entity.Buyer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Buyer, error)
	Update(ctx context.Context, id primitive.ObjectID, p entity.BuyerPatch) (*entity.Buyer, error)
	HasRef(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) (bool, error)
	AddRef(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) error
	RemoveRef(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) error
	ClearRefs(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList) error
}

type VendorStore interface {
	Create(ctx context.Context, v *entity.Vendor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Vendor, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Vendor, error)
	FindAll(ctx context.Context) ([]entity.Vendor, error)
	Update(ctx context.Context, id primitive.ObjectID, p entity.VendorPatch) (*entity.Vendor, error)
	HasRef(ctx context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) (bool, error)
	AddRef(ctx context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) error
	RemoveRef(ctx context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) error
	AddCuisine(ctx context.Context, vendorID primitive.ObjectID, cuisine string) error
	RemoveCuisine(ctx context.Context, vendorID primitive.ObjectID, cuisine string) error
}

type MenuStore interface {
	Create(ctx context.Context, m *entity.MenuItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, p entity.MenuItemPatch) error
	SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, expireAt time.Time) error
}

type CartStore interface {
	Create(ctx context.Context, c *entity.Cart) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Cart, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Cart, error)
	ReplaceItems(ctx context.Context, id primitive.ObjectID, items []entity.CartLine) error
	SetSaved(ctx context.Context, id primitive.ObjectID, saved bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) error
}

type OrderStore interface {
	Create(ctx context.Context, o *entity.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Order, error)
	FindByVendorStatus(ctx context.Context, vendorID primitive.ObjectID, status entity.OrderStatus) ([]entity.Order, error)
	UpdateStatusGuard(ctx context.Context, id primitive.ObjectID, from, to entity.OrderStatus) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Stores bundles one store per collection.
type Stores struct {
	Users   UserStore
	Buyers  BuyerStore
	Vendors VendorStore
	Menu    MenuStore
	Carts   CartStore
	Orders  OrderStore
}

// OrderNotifier receives order lifecycle events. Publishing never blocks.
type OrderNotifier interface {
	Publish(ev entity.OrderEvent)
}

type NopNotifier struct{}

func (NopNotifier) Publish(entity.OrderEvent) {}

// notFound maps a missing document to a 404 naming what, and passes other errors through.
func notFound(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(what)
	}
	return err
}

// ignoreMissing drops ErrNotFound, for deletes of documents that may already be gone.
func ignoreMissing(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
