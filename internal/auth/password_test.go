package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltsEveryCall(t *testing.T) {
	first, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, CheckPassword(first, "pw123"))
	assert.True(t, CheckPassword(second, "pw123"))
}

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hashed, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotContains(t, hashed, "secret")
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hashed, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, CheckPassword(hashed, "wrong"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name   string
		hashed string
	}{
		{name: "empty", hashed: ""},
		{name: "garbage", hashed: "not-a-bcrypt-hash"},
		{name: "truncated", hashed: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CheckPassword(tt.hashed, "anything"))
		})
	}
}
