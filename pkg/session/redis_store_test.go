package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func getRedis(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisStore(t *testing.T) {
	rdb := getRedis(t)
	ctx := context.Background()
	store := NewRedisStore(rdb)

	sid := "test-" + primitive.NewObjectID().Hex()
	d := &Data{UserID: primitive.NewObjectID(), BuyerID: primitive.NewObjectID()}
	require.NoError(t, store.Save(ctx, sid, d, time.Minute))

	got, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, d.UserID, got.UserID)
	assert.Equal(t, d.BuyerID, got.BuyerID)
	assert.True(t, got.VendorID.IsZero())

	ttl := rdb.TTL(ctx, keyPrefix+sid).Val()
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, sid))
	_, err = store.Get(ctx, sid)
	assert.ErrorIs(t, err, ErrNotFound)
}
