package memory

import (
	"context"
	"time"

	"marketplace/entity"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuRepository struct{ db *DB }

func (r *MenuRepository) Create(_ context.Context, m *entity.MenuItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m.ID = newID(m.ID)
	now := r.db.now()
	m.CreatedAt, m.UpdatedAt = now, now
	r.db.menu[m.ID] = cloneMenuItem(*m)
	return nil
}

// FindByID treats items past their expireAt as purged, like the TTL index.
func (r *MenuRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	m, ok := r.db.menu[id]
	if !ok || r.expired(m) {
		return nil, repository.ErrNotFound
	}
	m = cloneMenuItem(m)
	return &m, nil
}

func (r *MenuRepository) FindByIDs(_ context.Context, want []primitive.ObjectID) ([]entity.MenuItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]entity.MenuItem, 0, len(want))
	for _, m := range pick(r.db.menu, want, cloneMenuItem) {
		if !r.expired(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MenuRepository) Update(_ context.Context, id primitive.ObjectID, p entity.MenuItemPatch) error {
	return r.mutate(id, func(m *entity.MenuItem) {
		m.Name = p.Name
		m.Price = p.Price
		m.Category = p.Category
		m.Description = p.Description
		m.IsAvailable = p.IsAvailable
	})
}

func (r *MenuRepository) SetAvailability(_ context.Context, id primitive.ObjectID, available bool) error {
	return r.mutate(id, func(m *entity.MenuItem) { m.IsAvailable = available })
}

func (r *MenuRepository) SoftDelete(_ context.Context, id primitive.ObjectID, expireAt time.Time) error {
	return r.mutate(id, func(m *entity.MenuItem) { m.ExpireAt = &expireAt })
}

func (r *MenuRepository) mutate(id primitive.ObjectID, fn func(*entity.MenuItem)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m, ok := r.db.menu[id]
	if !ok || r.expired(m) {
		return repository.ErrNotFound
	}
	m = cloneMenuItem(m)
	fn(&m)
	m.UpdatedAt = r.db.now()
	r.db.menu[id] = m
	return nil
}

func (r *MenuRepository) expired(m entity.MenuItem) bool {
	return m.ExpireAt != nil && !r.db.now().Before(*m.ExpireAt)
}
