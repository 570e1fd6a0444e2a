// repository/menu_repository.go
package repository

import (
	"context"
	"time"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(MenuItemsCollection)}
}

func (r *MenuRepository) Create(ctx context.Context, m *entity.MenuItem) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	now := time.Now()
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, m)
	return translate(err)
}

// FindByID returns the item even when soft-deleted; callers check Deleted.
func (r *MenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	return findOne[entity.MenuItem](ctx, r.coll, bson.M{"_id": id})
}

func (r *MenuRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.MenuItem, error) {
	return findByIDs(ctx, r.coll, ids, func(m *entity.MenuItem) primitive.ObjectID { return m.ID })
}

func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, p entity.MenuItemPatch) error {
	return updateByID(ctx, r.coll, id, bson.M{"$set": bson.M{
		"name":        p.Name,
		"price":       p.Price,
		"category":    p.Category,
		"description": p.Description,
		"isAvailable": p.IsAvailable,
		"updatedAt":   time.Now(),
	}})
}

func (r *MenuRepository) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	return updateByID(ctx, r.coll, id, bson.M{"$set": bson.M{"isAvailable": available, "updatedAt": time.Now()}})
}

// SoftDelete stamps expireAt; the TTL index on that field removes the document later.
func (r *MenuRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, expireAt time.Time) error {
	return updateByID(ctx, r.coll, id, bson.M{"$set": bson.M{"expireAt": expireAt, "updatedAt": time.Now()}})
}
