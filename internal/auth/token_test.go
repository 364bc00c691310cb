package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-key")

	access, refresh, err := svc.Generate("u1")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	memberID, err := svc.Verify(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", memberID)

	memberID, err = svc.Verify(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", memberID)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-key")

	claims := jwt.MapClaims{
		MemberClaim: "u1",
		"iat":       time.Now().Add(-2 * time.Hour).Unix(),
		"exp":       time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewTokenService("test-key")

	cases := map[string]string{
		"garbage":       "not-a-jwt",
		"empty":         "",
		"wrong key":     mustSign(t, "other-key", "u1"),
		"missing claim": mustSignClaims(t, "test-key", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestVerifyRejectsUnexpectedSigningMethod(t *testing.T) {
	svc := NewTokenService("test-key")

	// alg=none tokens must never pass.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		MemberClaim: "u1",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestEncryptSHA256(t *testing.T) {
	// Stable digest: downstream storage relies on a deterministic placeholder.
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		EncryptSHA256("hello"))
}

func mustSign(t *testing.T, key, memberID string) string {
	t.Helper()
	return mustSignClaims(t, key, jwt.MapClaims{
		MemberClaim: memberID,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
}

func mustSignClaims(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}
