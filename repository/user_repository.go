package repository

import (
	"context"
	"time"

	"marketplace/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository talks to the users collection only.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, u)
	return translate(err)
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return findOne[entity.User](ctx, r.coll, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.coll, bson.M{"email": email})
}

func (r *UserRepository) SetBuyer(ctx context.Context, userID, buyerID primitive.ObjectID) error {
	return updateByID(ctx, r.coll, userID, bson.M{"$set": bson.M{"buyer": buyerID}})
}

func (r *UserRepository) SetVendor(ctx context.Context, userID, vendorID primitive.ObjectID) error {
	return updateByID(ctx, r.coll, userID, bson.M{"$set": bson.M{"vendor": vendorID}})
}
