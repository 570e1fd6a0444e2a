package memory

import (
	"context"
	"testing"
	"time"

	"marketplace/entity"
	"marketplace/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUsers_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	require.NoError(t, users.Create(ctx, &entity.User{Email: "a@b.c"}))
	err := users.Create(ctx, &entity.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = users.FindByEmail(ctx, "x@y.z")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVendors_UniqueName(t *testing.T) {
	ctx := context.Background()
	vendors := New().Vendors()

	require.NoError(t, vendors.Create(ctx, &entity.Vendor{Name: "Pho"}))
	assert.ErrorIs(t, vendors.Create(ctx, &entity.Vendor{Name: "Pho"}), repository.ErrDuplicate)
}

func TestBuyers_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	buyers := New().Buyers()

	b := &entity.Buyer{Name: "Ann"}
	require.NoError(t, buyers.Create(ctx, b))
	ref := primitive.NewObjectID()
	require.NoError(t, buyers.AddRef(ctx, b.ID, entity.BuyerCarts, ref))

	got, err := buyers.FindByID(ctx, b.ID)
	require.NoError(t, err)
	got.Carts[0] = primitive.NewObjectID()

	ok, err := buyers.HasRef(ctx, b.ID, entity.BuyerCarts, ref)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMenu_ExpiredItemsVanish(t *testing.T) {
	ctx := context.Background()
	db := New()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return now }
	menu := db.Menu()

	m := &entity.MenuItem{Name: "Soup", Price: 4}
	require.NoError(t, menu.Create(ctx, m))
	require.NoError(t, menu.SoftDelete(ctx, m.ID, now.Add(time.Hour)))

	got, err := menu.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted())

	now = now.Add(2 * time.Hour)
	_, err = menu.FindByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrders_GuardAndOrdering(t *testing.T) {
	ctx := context.Background()
	db := New()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return now }
	orders := db.Orders()

	first := &entity.Order{}
	require.NoError(t, orders.Create(ctx, first))
	now = now.Add(time.Minute)
	second := &entity.Order{}
	require.NoError(t, orders.Create(ctx, second))

	got, err := orders.FindByIDs(ctx, []primitive.ObjectID{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)

	ok, err := orders.UpdateStatusGuard(ctx, first.ID, entity.StatusPending, entity.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = orders.UpdateStatusGuard(ctx, first.ID, entity.StatusPending, entity.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok)
}
