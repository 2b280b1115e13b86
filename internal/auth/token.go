// Package auth verifies bearer tokens and answers role questions about
// the resulting principal. The signing secret is injected once at
// construction and treated as immutable for the process lifetime.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin gates every state-changing endpoint except comment creation.
const RoleAdmin = "admin"

// ErrTokenMissing is returned when no token was supplied at all. Handlers
// translate it into a 403 with a stable "no token provided" message.
var ErrTokenMissing = errors.New("no token provided")

// ErrTokenInvalid is returned for any signature, decoding or expiry
// failure. The underlying library error is deliberately not exposed so
// clients always see the same stable message.
var ErrTokenInvalid = errors.New("invalid token")

// Principal is the verified identity carried by a token, valid for one
// request. Roles may be empty; absence of the admin role is the normal case.
type Principal struct {
	UserID uint64
	Roles  []string
}

// HasRole reports whether the principal carries the named role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool { return p.HasRole(RoleAdmin) }

// Verifier decodes and verifies HS256 tokens with a pre-shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier around the process-wide signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify checks the raw token string and builds a Principal from its
// claims. An empty string yields ErrTokenMissing; every verification
// failure yields ErrTokenInvalid. UserID comes from the `user_id` claim
// and Roles from the `roles` claim (empty set when absent).
func (v *Verifier) Verify(raw string) (Principal, error) {
	if raw == "" {
		return Principal{}, ErrTokenMissing
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Principal{}, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrTokenInvalid
	}

	var p Principal
	switch id := claims["user_id"].(type) {
	case float64:
		p.UserID = uint64(id)
	case int64:
		p.UserID = uint64(id)
	}
	if rs, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rs {
			if s, ok := r.(string); ok {
				p.Roles = append(p.Roles, s)
			}
		}
	}
	return p, nil
}

// Issue signs an HS256 token carrying the user_id and roles claims plus
// the standard exp/iat pair. It is the counterpart of Verify and is used
// by the login endpoint.
func (v *Verifier) Issue(userID uint64, roles []string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"user_id": userID,
		"roles":   roles,
		"exp":     exp.Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
