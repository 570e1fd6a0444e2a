// services/vendor_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VendorInput struct {
	Name         string            `json:"name" binding:"required"`
	Address      string            `json:"address" binding:"required"`
	PriceRange   entity.PriceRange `json:"priceRange" binding:"required,pricerange"`
	Phone        string            `json:"phone" binding:"required"`
	Description  string            `json:"description"`
	CuisineTypes []string          `json:"cuisineTypes"`
}

type VendorPatchInput struct {
	Name        *string            `json:"name" binding:"omitempty,min=1"`
	Address     *string            `json:"address" binding:"omitempty,min=1"`
	PriceRange  *entity.PriceRange `json:"priceRange" binding:"omitempty,pricerange"`
	Phone       *string            `json:"phone"`
	Description *string            `json:"description"`
}

type CuisineInput struct {
	Cuisine string `json:"cuisine" binding:"required"`
}

type VendorService struct {
	Vendors VendorStore
	Users   UserStore
}

func NewVendorService(st Stores) *VendorService {
	return &VendorService{Vendors: st.Vendors, Users: st.Users}
}

func (s *VendorService) Get(ctx context.Context, vendorID primitive.ObjectID) (*entity.Vendor, error) {
	v, err := s.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFound(err, "Vendor")
	}
	return v, nil
}

func (s *VendorService) List(ctx context.Context) ([]entity.Vendor, error) {
	return s.Vendors.FindAll(ctx)
}

// Create makes the user's single vendor profile. Vendor names are unique.
func (s *VendorService) Create(ctx context.Context, userID primitive.ObjectID, in VendorInput) (*entity.Vendor, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User")
	}
	if u.Vendor != nil {
		return nil, apperr.AlreadyExists("Vendor")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.MissingField("name")
	}
	if !in.PriceRange.Valid() {
		return nil, apperr.InvalidField("priceRange")
	}

	v := &entity.Vendor{
		Name:        strings.TrimSpace(in.Name),
		Address:     in.Address,
		PriceRange:  in.PriceRange,
		Phone:       in.Phone,
		Description: in.Description,
	}
	for _, c := range in.CuisineTypes {
		if c = strings.TrimSpace(c); c != "" && !v.HasCuisine(c) {
			v.CuisineTypes = append(v.CuisineTypes, c)
		}
	}
	if err := s.Vendors.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.AlreadyExists("Vendor name")
		}
		return nil, err
	}
	if err := s.Users.SetVendor(ctx, userID, v.ID); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VendorService) Update(ctx context.Context, vendorID primitive.ObjectID, in VendorPatchInput) (*entity.Vendor, error) {
	if in.PriceRange != nil && !in.PriceRange.Valid() {
		return nil, apperr.InvalidField("priceRange")
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
	}
	v, err := s.Vendors.Update(ctx, vendorID, entity.VendorPatch{
		Name:        in.Name,
		Address:     in.Address,
		PriceRange:  in.PriceRange,
		Phone:       in.Phone,
		Description: in.Description,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, apperr.AlreadyExists("Vendor name")
	}
	if err != nil {
		return nil, notFound(err, "Vendor")
	}
	return v, nil
}

// ToggleCuisine adds the cuisine type when absent and removes it when present.
func (s *VendorService) ToggleCuisine(ctx context.Context, vendorID primitive.ObjectID, cuisine string) (*entity.Vendor, error) {
	cuisine = strings.TrimSpace(cuisine)
	if cuisine == "" {
		return nil, apperr.MissingField("cuisine")
	}
	v, err := s.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if v.HasCuisine(cuisine) {
		err = s.Vendors.RemoveCuisine(ctx, vendorID, cuisine)
	} else {
		err = s.Vendors.AddCuisine(ctx, vendorID, cuisine)
	}
	if err != nil {
		return nil, notFound(err, "Vendor")
	}
	return s.Get(ctx, vendorID)
}
