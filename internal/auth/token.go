package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired indicates the token's validity window has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenSignatureInvalid indicates the signature does not match the configured secret.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")
)

// RoleAdmin is the only role this system issues.
const RoleAdmin = "admin"

// Claims is the decoded identity carried by a bearer token.
type Claims struct {
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HMAC signed bearer tokens. Validity is a
// pure function of signature and expiry; there is no server side state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token embedding the given identity, valid for the configured TTL.
func (s *TokenService) Issue(username, role string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning the embedded claims
// unchanged. Failures map onto ErrTokenExpired, ErrTokenSignatureInvalid or
// ErrTokenMalformed.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	keyFunc := func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}

	var claims tokenClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	out := &Claims{
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
