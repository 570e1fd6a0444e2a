// Package repository stores marketplace documents in MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

const (
	UsersCollection     = "users"
	BuyersCollection    = "buyers"
	VendorsCollection   = "vendors"
	MenuItemsCollection = "menuitems"
	CartsCollection     = "carts"
	OrdersCollection    = "orders"
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findByIDs loads documents and returns them in the order of ids, skipping missing ones.
func findByIDs[T any](ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID, idOf func(*T) primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	docs, err := findAll[T](ctx, coll, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]T, len(docs))
	for i := range docs {
		byID[idOf(&docs[i])] = docs[i]
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// hasRef is the membership check: the parent filtered by the child id.
func hasRef(ctx context.Context, coll *mongo.Collection, parentID primitive.ObjectID, list string, ref any) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.M{"_id": parentID, list: ref}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, update any) error {
	res, err := coll.UpdateByID(ctx, id, update)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func setPtr[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
