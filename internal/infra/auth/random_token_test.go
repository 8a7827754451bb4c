package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomTokenGenerator_Generate(t *testing.T) {
	generator := NewRandomTokenGenerator()

	token, err := generator.Generate()
	assert.NoError(t, err)
	assert.Len(t, token, verificationTokenBytes*2)

	// Tokens are hex-encoded random bytes
	decoded, err := hex.DecodeString(token)
	assert.NoError(t, err)
	assert.Len(t, decoded, verificationTokenBytes)
}

func TestRandomTokenGenerator_Uniqueness(t *testing.T) {
	generator := NewRandomTokenGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		token, err := generator.Generate()
		assert.NoError(t, err)

		_, dup := seen[token]
		assert.False(t, dup, "generated token collided")
		seen[token] = struct{}{}
	}
}
