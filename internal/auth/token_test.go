package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)

	token, err := svc.Issue("admin", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, claims.IssuedAt.Add(24*time.Hour), claims.ExpiresAt, time.Second)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	base := time.Now()
	svc := NewTokenService("test-secret", 24*time.Hour)
	svc.now = func() time.Time { return base }

	token, err := svc.Issue("admin", RoleAdmin)
	require.NoError(t, err)

	// just inside the window
	svc.now = func() time.Time { return base.Add(23 * time.Hour) }
	_, err = svc.Verify(token)
	require.NoError(t, err)

	// past expiry, signature still correct
	svc.now = func() time.Time { return base.Add(25 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue("admin", RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenService_VerifyTampered(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("admin", RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, ErrTokenSignatureInvalid) || errors.Is(err, ErrTokenMalformed),
		"tampered token must fail verification, got %v", err)
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.Verify(input)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}

func TestTokenService_VerifyRejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin",
		"role":     RoleAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, ErrTokenSignatureInvalid) || errors.Is(err, ErrTokenMalformed),
		"alg=none token must fail verification, got %v", err)
}
