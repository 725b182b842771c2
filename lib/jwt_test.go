package lib

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestParseAdminTokenRejectsGarbage(t *testing.T) {
	_, err := ParseAdminToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractAdminClaims(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/orders", nil)
		_, err := ExtractAdminClaims(r)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/admin/orders", nil)
		r.Header.Set("Authorization", "Basic abc123")
		_, err := ExtractAdminClaims(r)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := GenerateAdminToken()
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/admin/orders", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		claims, err := ExtractAdminClaims(r)
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", claims.Role)
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("hunter2hunter2", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}
