package memory

import (
	"context"

	"marketplace/entity"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BuyerRepository struct{ db *DB }

func (r *BuyerRepository) Create(_ context.Context, b *entity.Buyer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b.ID = newID(b.ID)
	now := r.db.now()
	b.CreatedAt, b.UpdatedAt = now, now
	if b.SavedVendors == nil {
		b.SavedVendors = []primitive.ObjectID{}
	}
	if b.Carts == nil {
		b.Carts = []primitive.ObjectID{}
	}
	if b.Orders == nil {
		b.Orders = []primitive.ObjectID{}
	}
	r.db.buyers[b.ID] = cloneBuyer(*b)
	return nil
}

func (r *BuyerRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Buyer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	b, ok := r.db.buyers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b = cloneBuyer(b)
	return &b, nil
}

func (r *BuyerRepository) Update(_ context.Context, id primitive.ObjectID, p entity.BuyerPatch) (*entity.Buyer, error) {
	var out entity.Buyer
	err := r.mutate(id, func(b *entity.Buyer) {
		if p.Name != nil {
			b.Name = *p.Name
		}
		if p.Address != nil {
			b.Address = *p.Address
		}
		if p.Phone != nil {
			b.Phone = *p.Phone
		}
		out = cloneBuyer(*b)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *BuyerRepository) HasRef(_ context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	b, ok := r.db.buyers[buyerID]
	if !ok {
		return false, nil
	}
	return contains(*buyerList(&b, list), ref), nil
}

func (r *BuyerRepository) AddRef(_ context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) error {
	return r.mutate(buyerID, func(b *entity.Buyer) {
		l := buyerList(b, list)
		*l = addToSet(*l, ref)
	})
}

func (r *BuyerRepository) RemoveRef(_ context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) error {
	return r.mutate(buyerID, func(b *entity.Buyer) {
		l := buyerList(b, list)
		*l = pull(*l, ref)
	})
}

func (r *BuyerRepository) ClearRefs(_ context.Context, buyerID primitive.ObjectID, list entity.BuyerList) error {
	return r.mutate(buyerID, func(b *entity.Buyer) {
		*buyerList(b, list) = []primitive.ObjectID{}
	})
}

func (r *BuyerRepository) mutate(id primitive.ObjectID, fn func(*entity.Buyer)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.buyers[id]
	if !ok {
		return repository.ErrNotFound
	}
	b = cloneBuyer(b)
	fn(&b)
	b.UpdatedAt = r.db.now()
	r.db.buyers[id] = b
	return nil
}

func buyerList(b *entity.Buyer, list entity.BuyerList) *[]primitive.ObjectID {
	switch list {
	case entity.BuyerSavedVendors:
		return &b.SavedVendors
	case entity.BuyerCarts:
		return &b.Carts
	}
	return &b.Orders
}
