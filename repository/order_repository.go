package repository

import (
	"context"
	"sort"
	"time"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(OrdersCollection)}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, o)
	return translate(err)
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	return findOne[entity.Order](ctx, r.coll, bson.M{"_id": id})
}

// FindByIDs returns the orders newest first.
func (r *OrderRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Order, error) {
	out, err := findByIDs(ctx, r.coll, ids, func(o *entity.Order) primitive.ObjectID { return o.ID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepository) FindByVendorStatus(ctx context.Context, vendorID primitive.ObjectID, status entity.OrderStatus) ([]entity.Order, error) {
	return findAll[entity.Order](ctx, r.coll,
		bson.M{"vendor": vendorID, "status": status},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

// UpdateStatusGuard moves the order from one status to another only if it is
// still in the expected one. It reports whether the write happened.
func (r *OrderRepository) UpdateStatusGuard(ctx context.Context, id primitive.ObjectID, from, to entity.OrderStatus) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
