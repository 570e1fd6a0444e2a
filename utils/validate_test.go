package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseObjectID("cartId", id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseObjectID("cartId", "xyz")
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.StatusOf(err))
	assert.EqualError(t, err, "Invalid field: cartId")

	_, err = ParseObjectID("cartId", "")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

type bindProbe struct {
	Name       string `json:"name" binding:"required"`
	VendorID   string `json:"vendorId" binding:"omitempty,objectid"`
	PriceRange string `json:"priceRange" binding:"omitempty,pricerange"`
	Quantity   *int   `json:"quantity" binding:"omitempty,min=0"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p bindProbe
	if err := c.ShouldBindJSON(&p); err != nil {
		return BindError(err)
	}
	return nil
}

func TestBindError(t *testing.T) {
	assert.NoError(t, bind(t, `{"name":"x","priceRange":"$$","vendorId":"`+primitive.NewObjectID().Hex()+`"}`))

	err := bind(t, `{}`)
	assert.EqualError(t, err, "Missing field: name")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	err = bind(t, `{"name":"x","priceRange":"$$$$"}`)
	assert.EqualError(t, err, "Invalid field: priceRange")

	err = bind(t, `{"name":"x","vendorId":"nope"}`)
	assert.EqualError(t, err, "Invalid field: vendorId")

	err = bind(t, `{"name":"x","quantity":-1}`)
	assert.EqualError(t, err, "Invalid field: quantity")

	err = bind(t, `{"name":5}`)
	assert.EqualError(t, err, "Invalid field: name")

	err = bind(t, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestSessionAccessors(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentSession(c))
	assert.True(t, CurrentUserID(c).IsZero())
}
