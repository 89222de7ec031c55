package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintext_StoresAsGiven(t *testing.T) {
	stored, err := Plaintext{}.Hash("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)

	assert.True(t, Plaintext{}.Verify(stored, "secret"))
	assert.False(t, Plaintext{}.Verify(stored, "Secret"))
}

func TestBcrypt_VerifiesAndRejects(t *testing.T) {
	h := Bcrypt{Cost: 4} // min cost keeps the test fast

	stored, err := h.Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", stored)

	assert.True(t, h.Verify(stored, "secret"))
	assert.False(t, h.Verify(stored, "wrong"))
}
