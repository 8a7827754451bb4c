package service

// VerificationTokenGenerator produces opaque single-use tokens for
// email-verification links.
type VerificationTokenGenerator interface {
	// Generate returns a cryptographically random opaque string with enough
	// entropy to make guessing infeasible.
	Generate() (string, error)
}
