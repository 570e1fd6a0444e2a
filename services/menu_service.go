// services/menu_service.go
package services

import (
	"context"
	"strings"
	"time"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	IsAvailable *bool   `json:"isAvailable"`
}

type MenuService struct {
	Menu    MenuStore
	Vendors VendorStore
	Now     func() time.Time
}

func NewMenuService(st Stores) *MenuService {
	return &MenuService{Menu: st.Menu, Vendors: st.Vendors, Now: time.Now}
}

// ListByVendor returns the vendor's active menu in menu order.
func (s *MenuService) ListByVendor(ctx context.Context, vendorID primitive.ObjectID) ([]entity.MenuItem, error) {
	v, err := s.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFound(err, "Vendor")
	}
	items, err := s.Menu.FindByIDs(ctx, v.Menu)
	if err != nil {
		return nil, err
	}
	active := items[:0]
	for _, m := range items {
		if !m.Deleted() {
			active = append(active, m)
		}
	}
	return active, nil
}

func (s *MenuService) Get(ctx context.Context, itemID primitive.ObjectID) (*entity.MenuItem, error) {
	m, err := s.Menu.FindByID(ctx, itemID)
	if err != nil {
		return nil, notFound(err, "Menu item")
	}
	if m.Deleted() {
		return nil, apperr.NotFound("Menu item")
	}
	return m, nil
}

func (s *MenuService) Create(ctx context.Context, vendorID primitive.ObjectID, in MenuItemInput) (*entity.MenuItem, error) {
	if err := validateMenuInput(in); err != nil {
		return nil, err
	}
	if _, err := s.Vendors.FindByID(ctx, vendorID); err != nil {
		return nil, notFound(err, "Vendor")
	}

	m := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		IsAvailable: in.IsAvailable == nil || *in.IsAvailable,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := s.Menu.Create(ctx, m); err != nil {
		return nil, err
	}
	if err := s.Vendors.AddRef(ctx, vendorID, entity.VendorMenu, m.ID); err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the editable fields. An omitted isAvailable keeps the current value.
func (s *MenuService) Update(ctx context.Context, vendorID, itemID primitive.ObjectID, in MenuItemInput) (*entity.MenuItem, error) {
	if err := validateMenuInput(in); err != nil {
		return nil, err
	}
	m, err := s.owned(ctx, vendorID, itemID)
	if err != nil {
		return nil, err
	}
	available := m.IsAvailable
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	err = s.Menu.Update(ctx, itemID, entity.MenuItemPatch{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		IsAvailable: available,
	})
	if err != nil {
		return nil, notFound(err, "Menu item")
	}
	return s.Get(ctx, itemID)
}

func (s *MenuService) ToggleAvailability(ctx context.Context, vendorID, itemID primitive.ObjectID) (*entity.MenuItem, error) {
	m, err := s.owned(ctx, vendorID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.Menu.SetAvailability(ctx, itemID, !m.IsAvailable); err != nil {
		return nil, notFound(err, "Menu item")
	}
	return s.Get(ctx, itemID)
}

// Delete soft-deletes the item and drops it from the vendor's menu right away.
func (s *MenuService) Delete(ctx context.Context, vendorID, itemID primitive.ObjectID) error {
	if _, err := s.owned(ctx, vendorID, itemID); err != nil {
		return err
	}
	if err := s.Menu.SoftDelete(ctx, itemID, s.Now().Add(entity.SoftDeleteTTL)); err != nil {
		return notFound(err, "Menu item")
	}
	return s.Vendors.RemoveRef(ctx, vendorID, entity.VendorMenu, itemID)
}

func (s *MenuService) owned(ctx context.Context, vendorID, itemID primitive.ObjectID) (*entity.MenuItem, error) {
	ok, err := s.Vendors.HasRef(ctx, vendorID, entity.VendorMenu, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthorized("Unauthorized menu item")
	}
	return s.Get(ctx, itemID)
}

func validateMenuInput(in MenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.MissingField("name")
	}
	if in.Price <= 0 {
		return apperr.InvalidField("price")
	}
	if strings.TrimSpace(in.Category) == "" {
		return apperr.MissingField("category")
	}
	return nil
}
