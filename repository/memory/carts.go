package memory

import (
	"context"

	"marketplace/entity"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartRepository struct{ db *DB }

func (r *CartRepository) Create(_ context.Context, c *entity.Cart) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c.ID = newID(c.ID)
	now := r.db.now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.db.carts[c.ID] = cloneCart(*c)
	return nil
}

func (r *CartRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Cart, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.carts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = cloneCart(c)
	return &c, nil
}

func (r *CartRepository) FindByIDs(_ context.Context, want []primitive.ObjectID) ([]entity.Cart, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return pick(r.db.carts, want, cloneCart), nil
}

func (r *CartRepository) ReplaceItems(_ context.Context, id primitive.ObjectID, items []entity.CartLine) error {
	return r.mutate(id, func(c *entity.Cart) { c.Items = append([]entity.CartLine{}, items...) })
}

func (r *CartRepository) SetSaved(_ context.Context, id primitive.ObjectID, saved bool) error {
	return r.mutate(id, func(c *entity.Cart) { c.SavedForLater = saved })
}

func (r *CartRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.carts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.carts, id)
	return nil
}

func (r *CartRepository) DeleteMany(_ context.Context, want []primitive.ObjectID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, id := range want {
		delete(r.db.carts, id)
	}
	return nil
}

func (r *CartRepository) mutate(id primitive.ObjectID, fn func(*entity.Cart)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.carts[id]
	if !ok {
		return repository.ErrNotFound
	}
	c = cloneCart(c)
	fn(&c)
	c.UpdatedAt = r.db.now()
	r.db.carts[id] = c
	return nil
}
