package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenByteLength = 32

// generateOpaqueToken returns a random, non-guessable bearer token with
// no embedded structure or claims.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
