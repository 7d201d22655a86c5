package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/service/auth"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// Minimum cost keeps the test fast; production uses the default.
	hasher := auth.NewBcryptHasher(4)

	hash1, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash1)

	hash2, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash2, "salted hashes of the same password should differ")
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(4)
	verifier := auth.NewBcryptVerifier()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	t.Run("matching_password", func(t *testing.T) {
		assert.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	})

	t.Run("wrong_password", func(t *testing.T) {
		assert.Error(t, verifier.Compare(hash, "wrong password"))
	})

	t.Run("invalid_hash", func(t *testing.T) {
		assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "anything"))
	})
}
