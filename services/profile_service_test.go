package services

import (
	"net/http"
	"testing"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleSavedVendorTwiceRestoresSet(t *testing.T) {
	f := newFixture(t)
	buyerID := f.buyer("b@example.com")
	keep := f.vendor("Keep")
	toggled := f.vendor("Toggle")

	_, err := f.buyers.ToggleSavedVendor(f.ctx, buyerID, keep)
	require.NoError(t, err)
	before, err := f.buyers.Get(f.ctx, buyerID)
	require.NoError(t, err)

	b, err := f.buyers.ToggleSavedVendor(f.ctx, buyerID, toggled)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{keep, toggled}, b.SavedVendors)

	b, err = f.buyers.ToggleSavedVendor(f.ctx, buyerID, toggled)
	require.NoError(t, err)
	assert.Equal(t, before.SavedVendors, b.SavedVendors)

	saved, err := f.buyers.SavedVendors(f.ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Keep", saved[0].Name)

	_, err = f.buyers.ToggleSavedVendor(f.ctx, buyerID, primitive.NewObjectID())
	requireKind(t, err, apperr.KindNotFound, http.StatusNotFound)
}

func TestToggleCuisineTwiceRestoresSet(t *testing.T) {
	f := newFixture(t)
	vendorID := f.vendor("Noodles")

	v, err := f.vendors.ToggleCuisine(f.ctx, vendorID, "thai")
	require.NoError(t, err)
	before := append([]string{}, v.CuisineTypes...)

	v, err = f.vendors.ToggleCuisine(f.ctx, vendorID, "lao")
	require.NoError(t, err)
	assert.Equal(t, []string{"thai", "lao"}, v.CuisineTypes)

	v, err = f.vendors.ToggleCuisine(f.ctx, vendorID, "lao")
	require.NoError(t, err)
	assert.Equal(t, before, v.CuisineTypes)

	_, err = f.vendors.ToggleCuisine(f.ctx, vendorID, "  ")
	requireKind(t, err, apperr.KindMissingField, http.StatusBadRequest)
}

func TestVendorValidation(t *testing.T) {
	f := newFixture(t)
	f.vendor("Taken")

	_, err := f.vendors.Create(f.ctx, f.user("x@example.com").ID, VendorInput{Name: "Taken", Address: "a", PriceRange: "$", Phone: "1"})
	requireKind(t, err, apperr.KindAlreadyExists, http.StatusConflict)

	_, err = f.vendors.Create(f.ctx, f.user("y@example.com").ID, VendorInput{Name: "New", Address: "a", PriceRange: "$$$$", Phone: "1"})
	requireKind(t, err, apperr.KindInvalidField, http.StatusUnprocessableEntity)

	vendorID := f.vendor("Mine")
	bad := entity.PriceRange("cheap")
	_, err = f.vendors.Update(f.ctx, vendorID, VendorPatchInput{PriceRange: &bad})
	requireKind(t, err, apperr.KindInvalidField, http.StatusUnprocessableEntity)

	high := entity.PriceHigh
	desc := "late night"
	v, err := f.vendors.Update(f.ctx, vendorID, VendorPatchInput{PriceRange: &high, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, entity.PriceHigh, v.PriceRange)
	assert.Equal(t, "late night", v.Description)
	assert.Equal(t, "Mine", v.Name)
}

func TestBuyerUpdateKeepsOmittedFields(t *testing.T) {
	f := newFixture(t)
	buyerID := f.buyer("b@example.com")

	phone := "555-1234"
	b, err := f.buyers.Update(f.ctx, buyerID, BuyerPatchInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-1234", b.Phone)
	assert.Equal(t, "1 Main St", b.Address)
}
