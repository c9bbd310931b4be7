package auth

import "time"

// NewTestJWTService creates a JWTService with an injectable clock for tests.
// The refresh lifetime is fixed at four times the access lifetime.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:           []byte(secret),
		tokenLifetime:        tokenLifetime,
		refreshTokenLifetime: 4 * tokenLifetime,
		timeFunc:             timeFunc,
		clockSkew:            2 * time.Minute,
	}
}
