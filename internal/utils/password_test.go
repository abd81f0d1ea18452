package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
    h := BcryptHasher{Cost: bcrypt.MinCost}
    hash, err := h.Hash("admin123")
    require.NoError(t, err)

    assert.NotEqual(t, "admin123", hash)
    assert.True(t, VerifyPassword(hash, "admin123"))
    assert.False(t, VerifyPassword(hash, "admin124"))

    cost, err := bcrypt.Cost([]byte(hash))
    require.NoError(t, err)
    assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasherDefaultCost(t *testing.T) {
    hash, err := BcryptHasher{}.Hash("pw")
    require.NoError(t, err)
    cost, err := bcrypt.Cost([]byte(hash))
    require.NoError(t, err)
    assert.Equal(t, bcrypt.DefaultCost, cost)
}
