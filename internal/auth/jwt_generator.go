package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an issued session stays valid
const SessionTTL = 365 * 24 * time.Hour

var (
	// ErrMissingEmail is returned when a session is requested or presented without an email
	ErrMissingEmail = errors.New("session claims must carry an email")
	// ErrInvalidSession is returned for tokens that fail signature or time validation
	ErrInvalidSession = errors.New("invalid session token")
)

// Claims is the identity carried by a session token
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager signs and verifies session tokens with a shared HMAC secret
type SessionManager struct {
	signedKey    []byte
	signedMethod jwt.SigningMethod
	ttl          time.Duration
	now          func() time.Time
}

// NewSessionManager creates a manager issuing HS256 tokens valid for SessionTTL
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{
		signedKey:    []byte(secret),
		signedMethod: jwt.SigningMethodHS256,
		ttl:          SessionTTL,
		now:          time.Now,
	}
}

// TTL returns the lifetime of issued tokens
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given identity
func (m *SessionManager) Issue(email, name string) (string, error) {
	if email == "" {
		return "", ErrMissingEmail
	}

	now := m.now()
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(m.signedMethod, claims)
	signed, err := token.SignedString(m.signedKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and expiry and returns its claims
func (m *SessionManager) Parse(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC keys are accepted; an "alg" swap must not change the verification key type
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.signedKey, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuedAt())
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSession
	}
	if claims.Email == "" {
		return Claims{}, ErrMissingEmail
	}
	return claims, nil
}
