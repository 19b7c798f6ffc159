package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read locally out of a JWT session token without
// verifying its signature. A token that is not a JWT yields a zero TokenInfo,
// not an error: the server remains the authority on validity.
type TokenInfo struct {
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carried an expiry claim.
func (i TokenInfo) HasExpiry() bool {
	return !i.ExpiresAt.IsZero()
}

// Expired reports whether the expiry claim is in the past. Always false for
// tokens without one.
func (i TokenInfo) Expired() bool {
	return i.HasExpiry() && time.Now().After(i.ExpiresAt)
}

// Inspect parses the current token's registered claims without verification.
func (s *Store) Inspect() TokenInfo {
	tok := s.Token()
	if tok == "" {
		return TokenInfo{}
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}
	}

	var info TokenInfo
	if iat, err := parsed.Claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info
}
