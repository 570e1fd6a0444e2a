package repository

import (
	"context"
	"time"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BuyerRepository struct {
	coll *mongo.Collection
}

func NewBuyerRepository(db *mongo.Database) *BuyerRepository {
	return &BuyerRepository{coll: db.Collection(BuyersCollection)}
}

func (r *BuyerRepository) Create(ctx context.Context, b *entity.Buyer) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	now := time.Now()
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
	_, err := r.coll.InsertOne(ctx, b)
	return translate(err)
}

func (r *BuyerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Buyer, error) {
	return findOne[entity.Buyer](ctx, r.coll, bson.M{"_id": id})
}

func (r *BuyerRepository) Update(ctx context.Context, id primitive.ObjectID, p entity.BuyerPatch) (*entity.Buyer, error) {
	set := bson.M{"updatedAt": time.Now()}
	setPtr(set, "name", p.Name)
	setPtr(set, "address", p.Address)
	setPtr(set, "phone", p.Phone)

	var out entity.Buyer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *BuyerRepository) HasRef(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) (bool, error) {
	return hasRef(ctx, r.coll, buyerID, string(list), ref)
}

func (r *BuyerRepository) AddRef(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) error {
	return updateByID(ctx, r.coll, buyerID, bson.M{
		"$addToSet": bson.M{string(list): ref},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
}

func (r *BuyerRepository) RemoveRef(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList, ref primitive.ObjectID) error {
	return updateByID(ctx, r.coll, buyerID, bson.M{
		"$pull": bson.M{string(list): ref},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *BuyerRepository) ClearRefs(ctx context.Context, buyerID primitive.ObjectID, list entity.BuyerList) error {
	return updateByID(ctx, r.coll, buyerID, bson.M{
		"$set": bson.M{string(list): []primitive.ObjectID{}, "updatedAt": time.Now()},
	})
}
