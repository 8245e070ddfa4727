package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/community-bots/internal/domain"
)

// ErrInvalidToken wraps every token rejection. It is a domain.ErrUnauthorized.
var ErrInvalidToken = fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)

// JWTManager issues and validates the HS256 tokens that authorize function
// invocations. Tokens carry a subject (the caller, e.g. "scheduler") and a role.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	clock     clockwork.Clock
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		clock:     clockwork.NewRealClock(),
	}
}

// WithClock swaps the time source. Used by tests.
func (m *JWTManager) WithClock(c clockwork.Clock) *JWTManager {
	m.clock = c
	return m
}

// accessClaims extends standard JWT claims with the caller's role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for subject with role as a custom claim.
func (m *JWTManager) GenerateAccessToken(subject, role string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("subject is empty")
	}
	if role == "" {
		return "", fmt.Errorf("role is empty")
	}

	now := m.clock.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the subject and role if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (string, string, error) {
	if tokenString == "" {
		return "", "", fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, claims.Role, nil
}
