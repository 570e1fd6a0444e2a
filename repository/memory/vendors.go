package memory

import (
	"context"
	"sort"

	"marketplace/entity"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VendorRepository struct{ db *DB }

func (r *VendorRepository) Create(_ context.Context, v *entity.Vendor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.vendors {
		if existing.Name == v.Name {
			return repository.ErrDuplicate
		}
	}
	v.ID = newID(v.ID)
	now := r.db.now()
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
	r.db.vendors[v.ID] = cloneVendor(*v)
	return nil
}

func (r *VendorRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Vendor, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	v, ok := r.db.vendors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v = cloneVendor(v)
	return &v, nil
}

func (r *VendorRepository) FindByIDs(_ context.Context, want []primitive.ObjectID) ([]entity.Vendor, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return pick(r.db.vendors, want, cloneVendor), nil
}

func (r *VendorRepository) FindAll(_ context.Context) ([]entity.Vendor, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]entity.Vendor, 0, len(r.db.vendors))
	for _, v := range r.db.vendors {
		out = append(out, cloneVendor(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *VendorRepository) Update(_ context.Context, id primitive.ObjectID, p entity.VendorPatch) (*entity.Vendor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	v, ok := r.db.vendors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.Name != nil && *p.Name != v.Name {
		for otherID, other := range r.db.vendors {
			if otherID != id && other.Name == *p.Name {
				return nil, repository.ErrDuplicate
			}
		}
		v.Name = *p.Name
	}
	if p.Address != nil {
		v.Address = *p.Address
	}
	if p.PriceRange != nil {
		v.PriceRange = *p.PriceRange
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	v.UpdatedAt = r.db.now()
	r.db.vendors[id] = v
	out := cloneVendor(v)
	return &out, nil
}

func (r *VendorRepository) HasRef(_ context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	v, ok := r.db.vendors[vendorID]
	if !ok {
		return false, nil
	}
	return contains(*vendorList(&v, list), ref), nil
}

func (r *VendorRepository) AddRef(_ context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) error {
	return r.mutate(vendorID, func(v *entity.Vendor) {
		l := vendorList(v, list)
		*l = addToSet(*l, ref)
	})
}

func (r *VendorRepository) RemoveRef(_ context.Context, vendorID primitive.ObjectID, list entity.VendorList, ref primitive.ObjectID) error {
	return r.mutate(vendorID, func(v *entity.Vendor) {
		l := vendorList(v, list)
		*l = pull(*l, ref)
	})
}

func (r *VendorRepository) AddCuisine(_ context.Context, vendorID primitive.ObjectID, cuisine string) error {
	return r.mutate(vendorID, func(v *entity.Vendor) {
		if !v.HasCuisine(cuisine) {
			v.CuisineTypes = append(v.CuisineTypes, cuisine)
		}
	})
}

func (r *VendorRepository) RemoveCuisine(_ context.Context, vendorID primitive.ObjectID, cuisine string) error {
	return r.mutate(vendorID, func(v *entity.Vendor) {
		kept := v.CuisineTypes[:0]
		for _, c := range v.CuisineTypes {
			if c != cuisine {
				kept = append(kept, c)
			}
		}
		v.CuisineTypes = kept
	})
}

func (r *VendorRepository) mutate(id primitive.ObjectID, fn func(*entity.Vendor)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	v, ok := r.db.vendors[id]
	if !ok {
		return repository.ErrNotFound
	}
	v = cloneVendor(v)
	fn(&v)
	v.UpdatedAt = r.db.now()
	r.db.vendors[id] = v
	return nil
}

func vendorList(v *entity.Vendor, list entity.VendorList) *[]primitive.ObjectID {
	if list == entity.VendorMenu {
		return &v.Menu
	}
	return &v.Orders
}
