package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Verify("s3cret-password", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
}

func TestBcryptPasswordHasher_DistinctHashes(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Salted, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Verify("same-password", first))
	assert.NoError(t, hasher.Verify("same-password", second))
}

func TestBcryptPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	assert.Error(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
}

func TestNewBcryptPasswordHasher_CostClamping(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "below minimum", cost: 0, want: bcrypt.DefaultCost},
		{name: "above maximum", cost: 99, want: bcrypt.DefaultCost},
		{name: "within range", cost: bcrypt.MinCost, want: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptPasswordHasher(tt.cost)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
