// Package auth implements the signed identity token codec. Tokens are HS256
// JWTs carrying the account email as subject and the numeric user id.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the configured default token lifetime of 10 days.
const DefaultTTL = 240 * time.Hour

// Codec issues and validates identity tokens. It is a pure function of the
// secret and the clock; safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding subject and user id, issued now
// and expiring after the configured TTL.
func (c *Codec) Issue(subject string, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     subject,
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Validate reports whether the token's signature verifies against the
// configured secret and it has not expired. Malformed input returns false.
func (c *Codec) Validate(token string) bool {
	parsed, err := c.parse(token)
	return err == nil && parsed.Valid
}

// Subject returns the subject claim of an already-validated token. Callers
// must Validate first; the result for an invalid token is unspecified.
func (c *Codec) Subject(token string) string {
	claims, err := c.claims(token)
	if err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// UserID returns the user id claim of an already-validated token.
func (c *Codec) UserID(token string) int64 {
	claims, err := c.claims(token)
	if err != nil {
		return 0
	}
	// JSON numbers decode as float64.
	id, _ := claims["user_id"].(float64)
	return int64(id)
}

func (c *Codec) parse(token string) (*jwt.Token, error) {
	return jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
}

func (c *Codec) claims(token string) (jwt.MapClaims, error) {
	parsed, err := c.parse(token)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
