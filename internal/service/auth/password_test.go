package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password")
	require.NoError(t, err)
	require.NotEqual(t, "correct-password", hash)

	verifier := NewBcryptVerifier()

	t.Run("matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, verifier.Compare(hash, "correct-password"))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare(hash, "wrong-password"))
	})

	t.Run("malformed hash", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "correct-password"))
	})
}
