package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "0123456789abcdef-session"

func TestTokenRoundTrip(t *testing.T) {
	token, err := signToken("sid-1", testSecret, time.Minute)
	require.NoError(t, err)

	sid, err := parseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
}

func TestTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	token, err := signToken("sid-1", testSecret, time.Minute)
	require.NoError(t, err)
	_, err = parseToken(token, "some-other-secret-value")
	assert.Error(t, err)

	expired, err := signToken("sid-2", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = parseToken(expired, testSecret)
	assert.Error(t, err)

	_, err = parseToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	d := &Data{UserID: primitive.NewObjectID()}
	require.NoError(t, store.Save(ctx, "a", d, time.Minute))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, d.UserID, got.UserID)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "a", &Data{}, time.Minute))
	require.NoError(t, store.Delete(ctx, "a"))
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerStartLoadDestroy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewMemoryStore()
	m := NewManager(store, Options{Secret: testSecret, TTL: time.Hour})
	userID := primitive.NewObjectID()

	// start a session
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	sid, err := m.Start(c, &Data{UserID: userID})
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// load it back from the cookie
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)
	c.Request.AddCookie(cookies[0])
	gotSID, d, err := m.Load(c)
	require.NoError(t, err)
	assert.Equal(t, sid, gotSID)
	assert.Equal(t, userID, d.UserID)

	require.NoError(t, m.Destroy(c, gotSID))
	_, err = store.Get(context.Background(), sid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerLoadWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager(NewMemoryStore(), Options{Secret: testSecret})
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, err := m.Load(c)
	assert.ErrorIs(t, err, ErrNotFound)

	c.Request.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	_, _, err = m.Load(c)
	assert.ErrorIs(t, err, ErrNotFound)
}
