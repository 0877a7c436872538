package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// 哈希不等于明文, 且每次加盐结果不同
	assert.NotEqual(t, "admin123", hash)
	hash2, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "admin123"))
}
