// repository/vendor_repository.go
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

type VendorRepository struct {
	coll *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{coll: db.Collection(VendorsCollection)}
}

// Create fails with ErrDuplicate when the name is taken (unique index).
func (r *VendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	now := time.Now()
	v.CreatedAt, v.UpdatedAt = now, now
	if v.CuisineTypes == nil {
		v.CuisineTypes = []string{}
	}
	if v.Menu == nil {
		v.Menu = []primitive.ObjectID{}
	}
	if v.Orders == nil {
		v.Orders = []primitive.ObjectID{}
	}
	_, err := r.coll.InsertOne(ctx, v)
	return translate(err)
}

func (r *VendorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Vendor, error) {
	return findOne[entity.Vendor](ctx, r.coll, bson.M{"_id": id})
}

func (r *VendorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Vendor, error) {
	return findByIDs(ctx, r.coll, ids, func(v *entity.Vendor) primitive.ObjectID { return v.ID })
}

func (r *VendorRepository) FindAll(ctx context.Context) ([]entity.Vendor, error) {
	return findAll[entity.Vendor](ctx, r.coll, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *VendorRepository) Update(ctx context.Context, id primitive.ObjectID, p entity.VendorPatch) (*entity.Vendor, error) {
	set := bson.M{"updatedAt": time.Now()}
	setPtr(set, "name", p.Name)
	setPtr(set, "address", p.Address)
	setPtr(set, "priceRange", p.PriceRange)
	setPtr(set, "phone", p.Phone)
	setPtr(set, "description", p.Description)

	var out entity.Vendor
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *VendorRepository) HasRef(ctx context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) (bool, error) {
	return hasRef(ctx, r.coll, vendorID, string(list), ref)
}

// AddRef appends ref, so the menu keeps insertion order.
func (r *VendorRepository) AddRef(ctx context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) error {
	return updateByID(ctx, r.coll, vendorID, bson.M{
		"$addToSet": bson.M{string(list): ref},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
}

func (r *VendorRepository) RemoveRef(ctx context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) error {
	return updateByID(ctx, r.coll, vendorID, bson.M{
		"$pull": bson.M{string(list): ref},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *VendorRepository) AddCuisine(ctx context.Context, vendorID primitive.ObjectID, cuisine string) error {
	return updateByID(ctx, r.coll, vendorID, bson.M{"$addToSet": bson.M{"cuisineTypes": cuisine}})
}

func (r *VendorRepository) RemoveCuisine(ctx context.Context, vendorID primitive.ObjectID, cuisine string) error {
	return updateByID(ctx, r.coll, vendorID, bson.M{"$pull": bson.M{"cuisineTypes": cuisine}})
}
