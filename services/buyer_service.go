package services

import (
	"context"
	"strings"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BuyerInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
}

type BuyerPatchInput struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Address *string `json:"address" binding:"omitempty,min=1"`
	Phone   *string `json:"phone"`
}

type SavedVendorInput struct {
	VendorID string `json:"vendorId" binding:"required,objectid"`
}

type BuyerService struct {
	Buyers  BuyerStore
	Users   UserStore
	Vendors VendorStore
}

func NewBuyerService(st Stores) *BuyerService {
	return &BuyerService{Buyers: st.Buyers, Users: st.Users, Vendors: st.Vendors}
}

func (s *BuyerService) Get(ctx context.Context, buyerID primitive.ObjectID) (*entity.Buyer, error) {
	b, err := s.Buyers.FindByID(ctx, buyerID)
	if err != nil {
		return nil, notFound(err, "Buyer")
	}
	return b, nil
}

// Create makes the user's single buyer profile.
func (s *BuyerService) Create(ctx context.Context, userID primitive.ObjectID, in BuyerInput) (*entity.Buyer, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User")
	}
	if u.Buyer != nil {
		return nil, apperr.AlreadyExists("Buyer")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.MissingField("name")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, apperr.MissingField("address")
	}

	b := &entity.Buyer{Name: in.Name, Address: in.Address, Phone: in.Phone}
	if err := s.Buyers.Create(ctx, b); err != nil {
		return nil, err
	}
	if err := s.Users.SetBuyer(ctx, userID, b.ID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BuyerService) Update(ctx context.Context, buyerID primitive.ObjectID, in BuyerPatchInput) (*entity.Buyer, error) {
	b, err := s.Buyers.Update(ctx, buyerID, entity.BuyerPatch{Name: in.Name, Address: in.Address, Phone: in.Phone})
	if err != nil {
		return nil, notFound(err, "Buyer")
	}
	return b, nil
}

func (s *BuyerService) SavedVendors(ctx context.Context, buyerID primitive.ObjectID) ([]entity.Vendor, error) {
	b, err := s.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return s.Vendors.FindByIDs(ctx, b.SavedVendors)
}

// ToggleSavedVendor saves the vendor when absent and unsaves it when present.
func (s *BuyerService) ToggleSavedVendor(ctx context.Context, buyerID, vendorID primitive.ObjectID) (*entity.Buyer, error) {
	if _, err := s.Vendors.FindByID(ctx, vendorID); err != nil {
		return nil, notFound(err, "Vendor")
	}
	saved, err := s.Buyers.HasRef(ctx, buyerID, entity.BuyerSavedVendors, vendorID)
	if err != nil {
		return nil, err
	}
	if saved {
		err = s.Buyers.RemoveRef(ctx, buyerID, entity.BuyerSavedVendors, vendorID)
	} else {
		err = s.Buyers.AddRef(ctx, buyerID, entity.BuyerSavedVendors, vendorID)
	}
	if err != nil {
		return nil, notFound(err, "Buyer")
	}
	return s.Get(ctx, buyerID)
}
