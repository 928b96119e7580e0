package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessErrorHelpers(t *testing.T) {
	err := ErrConflict("slot_blocked", "blocked")

	be, ok := AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, be.Kind)
	assert.Equal(t, "slot_blocked", be.Code)

	assert.True(t, IsBusiness(err, "slot_blocked"))
	assert.False(t, IsBusiness(err, "slot_full"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))

	_, ok = AsBusiness(errors.New("plain"))
	assert.False(t, ok)
}

func TestFromBusinessStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{ErrValidation("bad_input", "x"), http.StatusBadRequest},
		{ErrConflict("duplicate", "x"), http.StatusConflict},
		{ErrNotFound("missing", "x"), http.StatusNotFound},
		{ErrAuth("denied", "x"), http.StatusUnauthorized},
		{ErrIllegalTransition("invalid_status", "x"), http.StatusBadRequest},

		// erro de infra nunca vira 4xx
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromBusiness(c, tt.err, "internal_error", "fallback")
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
	}
}
