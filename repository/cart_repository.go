package repository

import (
	"context"
	"time"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(CartsCollection)}
}

func (r *CartRepository) Create(ctx context.Context, c *entity.Cart) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, c)
	return translate(err)
}

func (r *CartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Cart, error) {
	return findOne[entity.Cart](ctx, r.coll, bson.M{"_id": id})
}

func (r *CartRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Cart, error) {
	return findByIDs(ctx, r.coll, ids, func(c *entity.Cart) primitive.ObjectID { return c.ID })
}

func (r *CartRepository) ReplaceItems(ctx context.Context, id primitive.ObjectID, items []entity.CartLine) error {
	return updateByID(ctx, r.coll, id, bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now()}})
}

func (r *CartRepository) SetSaved(ctx context.Context, id primitive.ObjectID, saved bool) error {
	return updateByID(ctx, r.coll, id, bson.M{"$set": bson.M{"savedForLater": saved, "updatedAt": time.Now()}})
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
