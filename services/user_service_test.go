package services

import (
	"net/http"
	"testing"

	"marketplace/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.Signup(f.ctx, CredentialsInput{Email: " Ann@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.NotEqual(t, "secret123", u.Password)

	_, err = f.users.Signup(f.ctx, CredentialsInput{Email: "ann@example.com", Password: "other123"})
	requireKind(t, err, apperr.KindAlreadyExists, http.StatusConflict)

	got, err := f.users.Login(f.ctx, LoginInput{Email: "ann@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.users.Login(f.ctx, LoginInput{Email: "ann@example.com", Password: "wrong"})
	requireKind(t, err, apperr.KindUnauthorized, http.StatusUnauthorized)

	_, err = f.users.Login(f.ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
	requireKind(t, err, apperr.KindUnauthorized, http.StatusUnauthorized)
}

func TestProfilesAreCreatedOnce(t *testing.T) {
	f := newFixture(t)
	u := f.user("both@example.com")

	_, err := f.buyers.Create(f.ctx, u.ID, BuyerInput{Name: "Ann", Address: "1 Road"})
	require.NoError(t, err)
	_, err = f.buyers.Create(f.ctx, u.ID, BuyerInput{Name: "Ann", Address: "1 Road"})
	requireKind(t, err, apperr.KindAlreadyExists, http.StatusConflict)

	// a user may hold a buyer and a vendor profile at once
	_, err = f.vendors.Create(f.ctx, u.ID, VendorInput{Name: "Ann's", Address: "1 Road", PriceRange: "$", Phone: "1"})
	require.NoError(t, err)
	_, err = f.vendors.Create(f.ctx, u.ID, VendorInput{Name: "Ann's 2", Address: "1 Road", PriceRange: "$", Phone: "1"})
	requireKind(t, err, apperr.KindAlreadyExists, http.StatusConflict)

	me, err := f.users.Me(f.ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, me.Buyer)
	assert.NotNil(t, me.Vendor)
}
