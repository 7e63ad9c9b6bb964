package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, h.Verify("s3cret-pass", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashUsesConfiguredCost(t *testing.T) {
	h := NewHasher(bcrypt.MinCost + 1)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestNewHasherRejectsOutOfRangeCost(t *testing.T) {
	assert.Equal(t, RoutineCost, NewHasher(0).Cost())
	assert.Equal(t, RoutineCost, NewHasher(99).Cost())
	assert.Equal(t, ResetCost, NewHasher(ResetCost).Cost())
}

func TestVerifyMalformedHashIsFalse(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, hash := range []string{"", "not-a-hash", "$2a$10$short"} {
		assert.False(t, h.Verify("anything", hash), "hash %q", hash)
	}
}

func TestDummyHashIsWellFormed(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(DummyHash))
	require.NoError(t, err)
	assert.Equal(t, RoutineCost, cost)
}
