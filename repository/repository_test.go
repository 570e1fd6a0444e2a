package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"marketplace/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDB connects to MONGO_URI and hands out a throwaway database.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skipf("MONGO_URI not set, skipping mongo repository tests")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo unreachable: %v", err)
	}

	db := client.Database("marketplace_test_" + primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testDB(t))

	u := &entity.User{Email: "a@b.c", Password: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.False(t, u.ID.IsZero())

	got, err := repo.FindByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	buyerID := primitive.NewObjectID()
	require.NoError(t, repo.SetBuyer(ctx, u.ID, buyerID))
	got, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Buyer)
	assert.Equal(t, buyerID, *got.Buyer)

	_, err = repo.FindByEmail(ctx, "nobody@b.c")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuyerRepository_Refs(t *testing.T) {
	ctx := context.Background()
	repo := NewBuyerRepository(testDB(t))

	b := &entity.Buyer{Name: "Ann", Address: "1 Road"}
	require.NoError(t, repo.Create(ctx, b))

	cart := primitive.NewObjectID()
	ok, err := repo.HasRef(ctx, b.ID, entity.BuyerCarts, cart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.AddRef(ctx, b.ID, entity.BuyerCarts, cart))
	require.NoError(t, repo.AddRef(ctx, b.ID, entity.BuyerCarts, cart))
	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{cart}, got.Carts)

	ok, err = repo.HasRef(ctx, b.ID, entity.BuyerCarts, cart)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.RemoveRef(ctx, b.ID, entity.BuyerCarts, cart))
	got, err = repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Carts)

	name := "Bea"
	updated, err := repo.Update(ctx, b.ID, entity.BuyerPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Bea", updated.Name)
	assert.Equal(t, "1 Road", updated.Address)
}

func TestOrderRepository_UpdateStatusGuard(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testDB(t))

	o := &entity.Order{Buyer: primitive.NewObjectID(), Cart: primitive.NewObjectID(), Status: entity.StatusPending}
	require.NoError(t, repo.Create(ctx, o))

	ok, err := repo.UpdateStatusGuard(ctx, o.ID, entity.StatusPending, entity.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatusGuard(ctx, o.ID, entity.StatusPending, entity.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, got.Status)
}

func TestFindByIDsKeepsInputOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(testDB(t))

	a := &entity.MenuItem{Name: "a", Price: 1}
	b := &entity.MenuItem{Name: "b", Price: 2}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByIDs(ctx, []primitive.ObjectID{b.ID, primitive.NewObjectID(), a.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
}
