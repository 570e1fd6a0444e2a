package memory

import (
	"context"
	"sort"

	"marketplace/entity"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository struct{ db *DB }

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o.ID = newID(o.ID)
	now := r.db.now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	r.db.orders[o.ID] = *o
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	o, ok := r.db.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *OrderRepository) FindByIDs(_ context.Context, want []primitive.ObjectID) ([]entity.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := pick(r.db.orders, want, cloneOrder)
	sortNewestFirst(out)
	return out, nil
}

func (r *OrderRepository) FindByVendorStatus(_ context.Context, vendorID primitive.ObjectID, status entity.OrderStatus) ([]entity.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]entity.Order, 0)
	for _, o := range r.db.orders {
		if o.Vendor == vendorID && o.Status == status {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepository) UpdateStatusGuard(_ context.Context, id primitive.ObjectID, from, to entity.OrderStatus) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o, ok := r.db.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = r.db.now()
	r.db.orders[id] = o
	return true, nil
}

func (r *OrderRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.orders, id)
	return nil
}
