package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherAndVerifier(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NoError(t, verifier.Compare(hash, "correct horse battery"))
	assert.ErrorIs(t, verifier.Compare(hash, "wrong password"), ErrPasswordMismatch)
	assert.Error(t, verifier.Compare("not-a-hash", "anything"))
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{0, 3, 32} {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(cost).cost, "cost %d", cost)
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	t.Parallel()

	_, err := NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
