package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// riderIDPrefix plus six random digits forms the human-readable rider
	// identifier (rider483920). Uniqueness is not verified against existing
	// records; with six digits, collisions surface as a profile-insert
	// conflict and fail the provisioning call.
	riderIDPrefix = "rider"
	riderIDDigits = 1000000

	// generatedPasswordLength is the fixed length of generated passwords.
	generatedPasswordLength = 12
)

// passwordAlphabet is the sanctioned character set for generated passwords:
// mixed-case letters, digits, and symbols, excluding visually ambiguous
// characters (0, O, o, 1, l, I).
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%&*"

// generateRiderID produces an identifier of the form rider\d{6}.
func generateRiderID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(riderIDDigits))
	if err != nil {
		return "", fmt.Errorf("failed to generate rider ID: %w", err)
	}
	return fmt.Sprintf("%s%06d", riderIDPrefix, n.Int64()), nil
}

// generatePassword produces a random password of generatedPasswordLength
// characters drawn uniformly from passwordAlphabet.
func generatePassword() (string, error) {
	alphabetLen := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, generatedPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
