package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"

	"accounts/internal/domain/service"
)

// verificationTokenBytes is the entropy of a verification token. 40 random
// bytes hex-encode to an 80-character opaque string.
const verificationTokenBytes = 40

// randomTokenGenerator implements VerificationTokenGenerator on crypto/rand.
type randomTokenGenerator struct{}

// NewRandomTokenGenerator is the constructor for randomTokenGenerator.
func NewRandomTokenGenerator() service.VerificationTokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a hex-encoded random token.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
