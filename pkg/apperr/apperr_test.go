package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   Kind
	}{
		{MissingField("name"), http.StatusBadRequest, KindMissingField},
		{Unauthorized(""), http.StatusUnauthorized, KindUnauthorized},
		{Forbidden("duplicate items"), http.StatusForbidden, KindCustom},
		{NotFound("Vendor"), http.StatusNotFound, KindNotFound},
		{AlreadyExists("Cart"), http.StatusConflict, KindAlreadyExists},
		{InvalidField("status"), http.StatusUnprocessableEntity, KindInvalidField},
		{errors.New("boom"), http.StatusInternalServerError, KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusOf(tc.err), tc.err.Error())
		assert.Equal(t, tc.kind, KindOf(tc.err), tc.err.Error())
	}
}

func TestWrappedChain(t *testing.T) {
	cause := errors.New("db down")
	err := fmt.Errorf("create cart: %w", NotFound("Vendor").Wrap(cause))

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "Vendor not found", e.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Unauthorized", Unauthorized("").Message)
	assert.Equal(t, "Missing field: items", MissingField("items").Error())
	assert.Equal(t, "Invalid field: cartId", InvalidField("cartId").Error())
	assert.Equal(t, "Buyer already exists", AlreadyExists("Buyer").Error())
}
