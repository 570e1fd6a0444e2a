package memory

import (
	"context"

	"marketplace/entity"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository struct{ db *DB }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if u.Email != "" && existing.Email == u.Email {
			return repository.ErrDuplicate
		}
		if u.GoogleID != "" && existing.GoogleID == u.GoogleID {
			return repository.ErrDuplicate
		}
	}
	u.ID = newID(u.ID)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.db.now()
	}
	r.db.users[u.ID] = cloneUser(*u)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users {
		if u.Email == email {
			u = cloneUser(u)
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) SetBuyer(_ context.Context, userID, buyerID primitive.ObjectID) error {
	return r.set(userID, func(u *entity.User) { u.Buyer = &buyerID })
}

func (r *UserRepository) SetVendor(_ context.Context, userID, vendorID primitive.ObjectID) error {
	return r.set(userID, func(u *entity.User) { u.Vendor = &vendorID })
}

func (r *UserRepository) set(id primitive.ObjectID, fn func(*entity.User)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(&u)
	r.db.users[id] = u
	return nil
}
